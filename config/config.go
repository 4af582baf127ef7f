package config

import "image/color"

// DefaultFrameDuration is how long a sprite frame stays up when a character
// does not override it (15 frames per second).
const DefaultFrameDuration = 1.0 / 15.0

// StageConfig contains arena geometry. Coordinates are world pixels with the
// origin at the top-left of the stage background.
type StageConfig struct {
	Width  float64
	Height float64

	// Horizontal clamp applied to a combatant's top-left corner.
	MinX float64
	MaxX float64

	GroundY float64 // top of the body rect when standing
	HomeX   [PlayerSlotCount]float64
}

// CombatantConfig contains the per-body constants shared by all characters.
type CombatantConfig struct {
	Width  float64
	Height float64

	MaxHealth  int
	MaxStamina int

	StaminaPeriod float64 // seconds per regenerated stamina point

	RespawnInvulnerability float64 // seconds

	// Sprite is drawn centred on the body then shifted by this offset.
	SpriteOffsetX float64
	SpriteOffsetY float64
}

// CombatConfig contains hit resolution values.
type CombatConfig struct {
	HitKnockback        float64 // knockback handed to ReceiveHit by resolution, pixels/second
	BlockKnockbackScale float64 // knockback kept when the hit is blocked
	KnockbackDecay      float64 // pixels/second lost per second

	// Invulnerability flashing
	FlashRate      float64 // toggles per second
	FlashAlphaLow  uint8
	FlashAlphaHigh uint8
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	// Fraction of the remaining distance left after one second of smoothing.
	Decay     float64
	MaxOffset float64 // clamp for the horizontal offset, both directions
}

// RoundConfig contains life and round bookkeeping values.
type RoundConfig struct {
	StartingLives int
	KOGrace       float64 // seconds a combatant stays dead before the round ends
}

// UIConfig contains HUD layout values.
type UIConfig struct {
	BarWidth        float64
	BarHeight       float64
	StaminaBarH     float64
	BarMargin       float64
	BarTweenSeconds float32
	BannerSeconds   float64
	BannerPop       float32 // seconds for the banner to shrink to full size
	BannerPopScale  float32
	HealthColor     color.RGBA
	HealthBgColor   color.RGBA
	StaminaColor    color.RGBA
	TextColor       color.RGBA
	BannerColor     color.RGBA
	BackgroundColor color.RGBA

	DebugBodyColor   color.RGBA
	DebugBlockColor  color.RGBA
	DebugHitboxColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	ShowFPS      bool
}

// Global configuration instances
var C *Config
var Stage StageConfig
var Combatant CombatantConfig
var Combat CombatConfig
var Camera CameraConfig
var Round RoundConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for combatant facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1920,
		Height: 1080,
		Title:  "Poca Lucha",
	}

	Combatant = CombatantConfig{
		Width:  300,
		Height: 600,

		MaxHealth:  100,
		MaxStamina: 20,

		StaminaPeriod: 0.5,

		RespawnInvulnerability: 1.5,

		SpriteOffsetX: 0,
		SpriteOffsetY: -50,
	}

	Stage = StageConfig{
		Width:   1920,
		Height:  1080,
		MinX:    -260,
		MaxX:    1920 + 260 - Combatant.Width,
		GroundY: 380,
		HomeX:   [PlayerSlotCount]float64{400, 1220},
	}

	Combat = CombatConfig{
		HitKnockback:        300.0,
		BlockKnockbackScale: 0.4,
		KnockbackDecay:      600.0,

		FlashRate:      10,
		FlashAlphaLow:  128,
		FlashAlphaHigh: 255,
	}

	Camera = CameraConfig{
		Decay:     0.02,
		MaxOffset: 260,
	}

	Round = RoundConfig{
		StartingLives: 3,
		KOGrace:       2.0,
	}

	UI = UIConfig{
		BarWidth:        700,
		BarHeight:       36,
		StaminaBarH:     14,
		BarMargin:       40,
		BarTweenSeconds: 0.35,
		BannerSeconds:   1.5,
		BannerPop:       0.3,
		BannerPopScale:  2.5,
		HealthColor:     color.RGBA{R: 40, G: 220, B: 40, A: 255},
		HealthBgColor:   color.RGBA{R: 200, G: 30, B: 30, A: 255},
		StaminaColor:    color.RGBA{R: 240, G: 200, B: 40, A: 255},
		TextColor:       White,
		BannerColor:     BrightOrange,
		BackgroundColor: color.RGBA{R: 4, G: 3, B: 3, A: 255},

		DebugBodyColor:   Red,
		DebugBlockColor:  Blue,
		DebugHitboxColor: Green,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		ShowFPS:      false,
	}
}
