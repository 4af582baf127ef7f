package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/pocalucha/assets"
	"github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/fonts"
	"github.com/automoto/pocalucha/scenes"
	"github.com/automoto/pocalucha/systems"
	"github.com/automoto/pocalucha/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(res *scenes.Resources) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewFightScene(g, res)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	resDir := flag.String("res", "./res", "directory holding sprites, backgrounds and sounds")
	tuningPath := flag.String("tuning", "", "YAML file overriding balance values")
	stageName := flag.String("stage", "dojo", "stage to fight on")
	p1 := flag.Int("p1", 0, "character id for player one")
	p2 := flag.Int("p2", 1, "character id for player two")
	flag.BoolVar(&config.Debug.ShowHitboxes, "debug", false, "draw bodies and hitboxes")
	flag.BoolVar(&config.Debug.ShowFPS, "fps", false, "show the frame rate")
	placeholder := flag.Bool("placeholder", false, "draw colored boxes instead of loading sprites")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning.Apply()
		log.Printf("[config] applied tuning from %s", *tuningPath)
	}

	stage, err := assets.LoadStage(*stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	resFS := os.DirFS(*resDir)
	frames := assets.NewFrameLoader(resFS)
	var provider factory.FrameProvider = frames
	if *placeholder {
		provider = assets.NewPlaceholderFrames()
	}

	res := &scenes.Resources{
		Frames:     provider,
		Sound:      assets.NewSoundPlayer(resFS),
		Stage:      stage,
		Background: frames.Background(stage.Background),
		Roster:     [config.PlayerSlotCount]config.CharacterID{config.CharacterID(*p1), config.CharacterID(*p2)},
	}
	res.Sound.Preload()

	// Check the roster up front so a bad id fails before the window opens.
	for _, id := range res.Roster {
		if _, err := factory.LoadCharacter(id, provider); err != nil {
			log.Fatalf("Failed to load character: %v", err)
		}
	}

	// Initialize persistence
	store, err := systems.OpenStore()
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		res.Store = store
	}

	ebiten.SetWindowSize(config.C.Width/2, config.C.Height/2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(NewGame(res)); err != nil {
		log.Fatal(err)
	}
}
