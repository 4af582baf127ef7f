package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPunch
	SoundKick
	SoundHit
	SoundBlock
	SoundKO
	// Round flow
	SoundRoundStart
	SoundVictory
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	FightMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.2,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		FightMusic: "bgm.ogg",
		SFXPaths: map[SoundID]string{
			SoundPunch:      "sfx/punch.wav",
			SoundKick:       "sfx/kick.wav",
			SoundHit:        "sfx/hit.wav",
			SoundBlock:      "sfx/block.wav",
			SoundKO:         "sfx/ko.wav",
			SoundRoundStart: "sfx/round.wav",
			SoundVictory:    "sfx/victory.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.5,
			SoundKO:  1.5,
		},
	}
}
