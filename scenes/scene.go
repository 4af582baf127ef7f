package scenes

import (
	"github.com/automoto/pocalucha/assets"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/shared/stagedata"
	"github.com/automoto/pocalucha/systems"
	"github.com/automoto/pocalucha/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Resources are loaded once at startup and shared by every match.
type Resources struct {
	Frames     factory.FrameProvider
	Sound      *assets.SoundPlayer
	Store      systems.ItemStore
	Stage      *stagedata.Stage
	Background *ebiten.Image
	Roster     [cfg.PlayerSlotCount]cfg.CharacterID
}
