package factory

import (
	"github.com/automoto/pocalucha/archetypes"
	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/shared/stagedata"
	"github.com/automoto/pocalucha/systems"
	"github.com/yohamta/donburi"
)

// CreateRound spawns the round singleton together with the event queue and
// the clock, with round one already under way.
func CreateRound(w donburi.World) *donburi.Entry {
	round := archetypes.Round.Spawn(w)
	components.Round.SetValue(round, components.RoundData{
		Number: 1,
		Active: true,
		State:  cfg.RoundStateFighting,
		Winner: components.Draw,
	})
	return round
}

// CreateStage spawns the arena loaded from a TMX file.
func CreateStage(w donburi.World, st *stagedata.Stage) *donburi.Entry {
	stage := archetypes.Stage.Spawn(w)
	components.Stage.SetValue(stage, components.StageData{
		Name:       st.Name,
		Width:      st.Width,
		Height:     st.Height,
		MinX:       st.MinX,
		MaxX:       st.MaxX,
		GroundY:    st.GroundY,
		HomeX:      st.Homes,
		Background: st.Background,
	})
	return stage
}

// CreateSettings spawns the settings and record singletons.
func CreateSettings(w donburi.World, s systems.SavedSettings, r systems.SavedRecord) *donburi.Entry {
	settings := archetypes.Settings.Spawn(w)
	components.Record.SetValue(settings, components.RecordData{Wins: r.Wins, Draws: r.Draws})
	systems.ApplySettings(w, s)
	return settings
}
