package assets

import (
	"embed"
	"fmt"
	"hash/fnv"
	"image/color"
	"io/fs"
	"log"

	"github.com/automoto/pocalucha/assets/animations"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/shared/stagedata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:stages
	stageFS embed.FS
)

// LoadStage reads an arena from the embedded stages directory.
func LoadStage(name string) (*stagedata.Stage, error) {
	return stagedata.Load(stageFS, "stages/"+name+".tmx", cfg.Combatant.Width)
}

// FrameLoader loads sprite frames from a directory of numbered PNG files.
type FrameLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewFrameLoader(fsys fs.FS) *FrameLoader {
	return &FrameLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *FrameLoader) loadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	l.cache[path] = img
	return img, nil
}

// Frames loads count images starting at file index from. Clips that share
// files share the decoded images.
func (l *FrameLoader) Frames(template string, from, count int) ([]animations.Frame, error) {
	frames := make([]animations.Frame, 0, count)
	for i := from; i < from+count; i++ {
		img, err := l.loadImage(fmt.Sprintf(template, i))
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// Background returns the stage backdrop, or nil when the file is missing.
func (l *FrameLoader) Background(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	img, err := l.loadImage(path)
	if err != nil {
		log.Printf("[assets] Warning: %v", err)
		return nil
	}
	return img
}

// PlaceholderFrames draws flat colored frames so the game runs without the
// sprite pack. Each clip gets its own hue and a bar that grows with the frame
// index.
type PlaceholderFrames struct {
	cache map[string][]animations.Frame
}

func NewPlaceholderFrames() *PlaceholderFrames {
	return &PlaceholderFrames{cache: make(map[string][]animations.Frame)}
}

func (p *PlaceholderFrames) Frames(template string, from, count int) ([]animations.Frame, error) {
	key := fmt.Sprintf("%s/%d/%d", template, from, count)
	if frames, ok := p.cache[key]; ok {
		return frames, nil
	}

	w, h := int(cfg.Combatant.Width), int(cfg.Combatant.Height)
	fill := placeholderColor(template)
	frames := make([]animations.Frame, count)
	for i := range frames {
		img := ebiten.NewImage(w, h)
		img.Fill(fill)
		progress := float32(i+1) / float32(count)
		vector.FillRect(img, 0, float32(h)-12, float32(w)*progress, 12, cfg.White, false)
		// Marks the leading edge so facing is visible.
		vector.FillRect(img, float32(w)-20, 80, 20, 40, cfg.White, false)
		frames[i] = img
	}
	p.cache[key] = frames
	return frames, nil
}

func placeholderColor(template string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(template))
	sum := h.Sum32()
	return color.RGBA{
		R: uint8(80 + sum%150),
		G: uint8(80 + (sum>>8)%150),
		B: uint8(80 + (sum>>16)%150),
		A: 255,
	}
}
