package components

import (
	cfg "github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

// SettingsData mirrors the persisted user settings (singleton).
type SettingsData struct {
	SFXVolume    float64
	MusicVolume  float64
	Muted        bool
	ShowHitboxes bool
}

// RecordData counts finished matches.
type RecordData struct {
	Wins  [cfg.PlayerSlotCount]int
	Draws int
}

var Settings = donburi.NewComponentType[SettingsData]()
var Record = donburi.NewComponentType[RecordData]()
