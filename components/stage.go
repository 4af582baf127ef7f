package components

import (
	cfg "github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

// StageData is the arena the match is fought in (singleton).
type StageData struct {
	Name       string
	Width      float64
	Height     float64
	MinX       float64
	MaxX       float64
	GroundY    float64
	HomeX      [cfg.PlayerSlotCount]float64
	Background string
}

var Stage = donburi.NewComponentType[StageData]()

// StageOf returns the world's stage, falling back to the configured arena
// when none was spawned.
func StageOf(w donburi.World) StageData {
	if e, ok := Stage.First(w); ok {
		return *Stage.Get(e)
	}
	return StageData{
		Name:    "default",
		Width:   cfg.Stage.Width,
		Height:  cfg.Stage.Height,
		MinX:    cfg.Stage.MinX,
		MaxX:    cfg.Stage.MaxX,
		GroundY: cfg.Stage.GroundY,
		HomeX:   cfg.Stage.HomeX,
	}
}
