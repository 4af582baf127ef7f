package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const (
	settingsKey = "settings"
	recordKey   = "record"
)

// ItemStore is the subset of gdata.Manager the game uses.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume  float64 `json:"musicVolume"`
	SFXVolume    float64 `json:"sfxVolume"`
	Muted        bool    `json:"muted"`
	ShowHitboxes bool    `json:"showHitboxes"`
}

// SavedRecord is the win tally across matches.
type SavedRecord struct {
	Wins  [cfg.PlayerSlotCount]int `json:"wins"`
	Draws int                      `json:"draws"`
}

// DefaultSettings returns the settings used when nothing was saved yet.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// OpenStore opens the per-user data directory.
func OpenStore() (ItemStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: "pocalucha",
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return m, nil
}

func loadJSON(store ItemStore, key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(store ItemStore, key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadSettings loads settings from disk, falling back to defaults when none
// were saved or the saved data is unreadable.
func LoadSettings(store ItemStore) SavedSettings {
	s := DefaultSettings()
	if _, err := loadJSON(store, settingsKey, &s); err != nil {
		log.Printf("[persistence] Warning: %v", err)
		return DefaultSettings()
	}
	return s
}

// SaveSettings saves settings to disk
func SaveSettings(store ItemStore, s SavedSettings) error {
	return saveJSON(store, settingsKey, s)
}

// LoadRecord loads the win tally. A missing or broken record starts at zero.
func LoadRecord(store ItemStore) SavedRecord {
	var r SavedRecord
	if _, err := loadJSON(store, recordKey, &r); err != nil {
		log.Printf("[persistence] Warning: %v", err)
		return SavedRecord{}
	}
	return r
}

// SaveRecord saves the win tally.
func SaveRecord(store ItemStore, r SavedRecord) error {
	return saveJSON(store, recordKey, r)
}

// ApplySettings copies saved settings into the world's settings singleton.
func ApplySettings(w donburi.World, s SavedSettings) {
	entry, ok := components.Settings.First(w)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	settings.MusicVolume = s.MusicVolume
	settings.SFXVolume = s.SFXVolume
	settings.Muted = s.Muted
	settings.ShowHitboxes = s.ShowHitboxes
}

// CurrentSettings reads the settings singleton back into its saved form.
func CurrentSettings(w donburi.World) SavedSettings {
	entry, ok := components.Settings.First(w)
	if !ok {
		return DefaultSettings()
	}
	settings := components.Settings.Get(entry)
	return SavedSettings{
		MusicVolume:  settings.MusicVolume,
		SFXVolume:    settings.SFXVolume,
		Muted:        settings.Muted,
		ShowHitboxes: settings.ShowHitboxes,
	}
}

// RecordMatch adds a finished match to the tally and saves it.
func RecordMatch(w donburi.World, store ItemStore, winner cfg.PlayerSlot) SavedRecord {
	r := LoadRecord(store)
	if winner == components.Draw {
		r.Draws++
	} else {
		r.Wins[winner]++
	}
	if err := SaveRecord(store, r); err != nil {
		log.Printf("[persistence] Warning: %v", err)
	}

	if entry, ok := components.Record.First(w); ok {
		components.Record.SetValue(entry, components.RecordData{Wins: r.Wins, Draws: r.Draws})
	}
	return r
}
