package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"

	cfg "github.com/automoto/pocalucha/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Only one audio context may exist per process.
var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

func sharedAudioContext() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader reading from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}
	decoded, err := l.decode(path)
	if err != nil {
		return err
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// LoadMusic returns a looping streaming player. Music is always OGG.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", path, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

// SoundPlayer plays the game's sound effects and music. A sound that fails
// to load is reported once and then stays silent.
type SoundPlayer struct {
	loader      *AudioLoader
	music       *audio.Player
	musicKey    string
	sfxVolume   float64
	musicVolume float64
	muted       bool
	broken      map[string]bool
}

func NewSoundPlayer(fsys fs.FS) *SoundPlayer {
	return &SoundPlayer{
		loader:      NewAudioLoader(sharedAudioContext(), fsys),
		sfxVolume:   cfg.Audio.DefaultSFXVol,
		musicVolume: cfg.Audio.DefaultMusicVol,
		broken:      make(map[string]bool),
	}
}

// Preload decodes every configured sound effect.
func (p *SoundPlayer) Preload() {
	for _, path := range cfg.Sound.SFXPaths {
		if err := p.loader.PreloadSFX(path); err != nil {
			p.fail(path, err)
		}
	}
}

func (p *SoundPlayer) fail(path string, err error) {
	if !p.broken[path] {
		log.Printf("[assets] Warning: %v", err)
	}
	p.broken[path] = true
}

// Play starts a sound effect.
func (p *SoundPlayer) Play(sound cfg.SoundID) {
	if p.muted || p.sfxVolume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[sound]
	if !ok || p.broken[path] {
		return
	}

	player, err := p.loader.LoadSFX(path)
	if err != nil {
		p.fail(path, err)
		return
	}

	volume := p.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[sound]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping music, replacing whatever was playing.
func (p *SoundPlayer) PlayMusic(path string) {
	if p.musicKey == path || p.broken[path] {
		return
	}
	p.StopMusic()

	player, err := p.loader.LoadMusic(path)
	if err != nil {
		p.fail(path, err)
		return
	}
	player.SetVolume(p.effectiveMusicVolume())
	player.Play()
	p.music = player
	p.musicKey = path
}

// StopMusic immediately stops the current music
func (p *SoundPlayer) StopMusic() {
	if p.music != nil {
		_ = p.music.Close()
		p.music = nil
		p.musicKey = ""
	}
}

// SetVolumes changes the sound effect and music volumes (0.0 - 1.0).
func (p *SoundPlayer) SetVolumes(sfx, music float64, muted bool) {
	p.sfxVolume = sfx
	p.musicVolume = music
	p.muted = muted
	if p.music != nil {
		p.music.SetVolume(p.effectiveMusicVolume())
	}
}

func (p *SoundPlayer) effectiveMusicVolume() float64 {
	if p.muted {
		return 0
	}
	return p.musicVolume
}
