package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pocalucha/archetypes"
	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/automoto/pocalucha/systems/input"
	"github.com/automoto/pocalucha/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VictoryScene names the winner and waits for a rematch.
type VictoryScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	res          *Resources
	winner       cfg.PlayerSlot
	once         sync.Once
}

// NewVictoryScene creates a new victory scene
func NewVictoryScene(sc SceneChanger, res *Resources, winner cfg.PlayerSlot) *VictoryScene {
	return &VictoryScene{sceneChanger: sc, res: res, winner: winner}
}

func (vs *VictoryScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *VictoryScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *VictoryScene) configure() {
	w := donburi.NewWorld()
	vs.ecs = ecs.NewECS(w)

	round := archetypes.Round.Spawn(w)
	components.Round.SetValue(round, components.RoundData{
		State:  cfg.RoundStateMatchOver,
		Winner: vs.winner,
	})
	record := systems.LoadRecord(vs.res.Store)
	settings := archetypes.Settings.Spawn(w)
	components.Record.SetValue(settings, components.RecordData{Wins: record.Wins, Draws: record.Draws})

	vs.ecs.AddSystem(vs.update)
	vs.ecs.AddRenderer(layerDefault, render.DrawVictory)

	// The victory jingle already played with the match-over event.
	if vs.res.Sound != nil {
		vs.res.Sound.StopMusic()
	}
}

func (vs *VictoryScene) update(ecs *ecs.ECS) {
	if input.ConfirmPressed() {
		vs.sceneChanger.ChangeScene(NewFightScene(vs.sceneChanger, vs.res))
	}
}
