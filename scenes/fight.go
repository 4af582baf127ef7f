package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/automoto/pocalucha/systems/factory"
	"github.com/automoto/pocalucha/systems/input"
	"github.com/automoto/pocalucha/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FightScene runs one match between the two roster characters.
type FightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	res          *Resources
	once         sync.Once

	settings systems.SavedSettings
	// Counts down once the match is decided, then the victory screen opens.
	outro    float64
	finished bool
}

// NewFightScene creates a new fight scene
func NewFightScene(sc SceneChanger, res *Resources) *FightScene {
	return &FightScene{sceneChanger: sc, res: res}
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FightScene) configure() {
	w := donburi.NewWorld()
	fs.ecs = ecs.NewECS(w)

	if fs.res.Stage != nil {
		factory.CreateStage(w, fs.res.Stage)
	}
	factory.CreateSpace(w, 32)
	factory.CreateCamera(w)
	factory.CreateRound(w)

	fs.settings = systems.LoadSettings(fs.res.Store)
	factory.CreateSettings(w, fs.settings, systems.LoadRecord(fs.res.Store))
	fs.applyVolumes()

	for slot := cfg.PlayerOne; slot < cfg.PlayerSlotCount; slot++ {
		if _, err := factory.CreateCombatant(w, fs.res.Roster[slot], slot, fs.res.Frames); err != nil {
			panic(fmt.Sprintf("failed to create %s: %v", slot, err))
		}
	}

	fs.ecs.AddSystem(input.UpdateKeyboard)
	fs.ecs.AddSystem(input.UpdateToggles)
	fs.ecs.AddSystem(fs.update)

	fs.ecs.AddRenderer(layerDefault, render.DrawStage(fs.res.Background))
	fs.ecs.AddRenderer(layerDefault, render.DrawCombatants)
	fs.ecs.AddRenderer(layerDefault, render.DrawDebug)
	fs.ecs.AddRenderer(layerDefault, render.DrawHUD)
	fs.ecs.AddRenderer(layerDefault, render.DrawBanner)

	systems.ShowBanner(w, fmt.Sprintf("ROUND %d", systems.RoundNumber(w)))
	if fs.res.Sound != nil {
		fs.res.Sound.Play(cfg.SoundRoundStart)
		fs.res.Sound.PlayMusic(cfg.Sound.FightMusic)
	}
	log.Printf("[fight] %s vs %s on %s",
		cfg.Characters[fs.res.Roster[cfg.PlayerOne]].Name,
		cfg.Characters[fs.res.Roster[cfg.PlayerTwo]].Name,
		components.StageOf(w).Name)
}

// update advances the simulation by one fixed tick and feeds its events to
// the presentation side.
func (fs *FightScene) update(ecs *ecs.ECS) {
	w := ecs.World
	dt := 1.0 / float64(ebiten.TPS())

	systems.Step(w, dt)

	var sink systems.AudioSink
	if fs.res.Sound != nil {
		sink = fs.res.Sound
	}
	evs := systems.PlayEvents(w, sink)
	systems.AnnounceEvents(w, evs)
	systems.UpdateBanner(w, dt)
	fs.persistSettings(w)

	for _, ev := range evs {
		if ev.Kind == components.EventMatchOver {
			systems.RecordMatch(w, fs.res.Store, ev.Slot)
			fs.finished = true
			fs.outro = cfg.UI.BannerSeconds
		}
	}

	if !fs.finished {
		return
	}
	fs.outro -= dt
	if fs.outro <= 0 {
		fs.sceneChanger.ChangeScene(NewVictoryScene(fs.sceneChanger, fs.res, fs.winner(w)))
	}
}

func (fs *FightScene) winner(w donburi.World) cfg.PlayerSlot {
	entry, ok := components.Round.First(w)
	if !ok {
		return components.Draw
	}
	return components.Round.Get(entry).Winner
}

// persistSettings saves the settings whenever a toggle changed them.
func (fs *FightScene) persistSettings(w donburi.World) {
	current := systems.CurrentSettings(w)
	if current == fs.settings {
		return
	}
	fs.settings = current
	fs.applyVolumes()
	if err := systems.SaveSettings(fs.res.Store, current); err != nil {
		log.Printf("[persistence] Warning: %v", err)
	}
}

func (fs *FightScene) applyVolumes() {
	if fs.res.Sound != nil {
		fs.res.Sound.SetVolumes(fs.settings.SFXVolume, fs.settings.MusicVolume, fs.settings.Muted)
	}
}
