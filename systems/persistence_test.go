package systems_test

import (
	"errors"
	"testing"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/automoto/pocalucha/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type memStore struct {
	items   map[string][]byte
	failing bool
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	if s.failing {
		return nil, errors.New("disk on fire")
	}
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	if s.failing {
		return errors.New("disk on fire")
	}
	s.items[key] = data
	return nil
}

func TestSettingsRoundTripThroughStore(t *testing.T) {
	store := newMemStore()
	assert.Equal(t, systems.DefaultSettings(), systems.LoadSettings(store))

	want := systems.SavedSettings{MusicVolume: 0.5, SFXVolume: 0.25, Muted: true, ShowHitboxes: true}
	require.NoError(t, systems.SaveSettings(store, want))
	assert.Equal(t, want, systems.LoadSettings(store))
}

func TestBrokenSettingsFallBackToDefaults(t *testing.T) {
	store := newMemStore()
	store.items["settings"] = []byte("{not json")
	assert.Equal(t, systems.DefaultSettings(), systems.LoadSettings(store))

	store.failing = true
	assert.Equal(t, systems.DefaultSettings(), systems.LoadSettings(store))
	assert.Error(t, systems.SaveSettings(store, systems.DefaultSettings()))
}

func TestNilStoreIsANoop(t *testing.T) {
	assert.Equal(t, systems.DefaultSettings(), systems.LoadSettings(nil))
	assert.NoError(t, systems.SaveSettings(nil, systems.DefaultSettings()))
	assert.Equal(t, systems.SavedRecord{}, systems.LoadRecord(nil))
}

func TestRecordMatch(t *testing.T) {
	store := newMemStore()
	w := donburi.NewWorld()
	factory.CreateSettings(w, systems.DefaultSettings(), systems.SavedRecord{})

	systems.RecordMatch(w, store, cfg.PlayerOne)
	systems.RecordMatch(w, store, cfg.PlayerTwo)
	systems.RecordMatch(w, store, cfg.PlayerOne)
	r := systems.RecordMatch(w, store, components.Draw)

	want := systems.SavedRecord{Wins: [cfg.PlayerSlotCount]int{2, 1}, Draws: 1}
	assert.Equal(t, want, r)
	assert.Equal(t, want, systems.LoadRecord(store))

	e, ok := components.Record.First(w)
	require.True(t, ok)
	assert.Equal(t, components.RecordData{Wins: want.Wins, Draws: 1}, *components.Record.Get(e))
}

func TestApplySettings(t *testing.T) {
	w := donburi.NewWorld()
	s := systems.SavedSettings{MusicVolume: 0.1, SFXVolume: 0.9, ShowHitboxes: true}
	factory.CreateSettings(w, s, systems.SavedRecord{})

	assert.Equal(t, s, systems.CurrentSettings(w))
}
