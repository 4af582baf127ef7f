package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const debugStroke = 2

func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func strokeRect(screen *ebiten.Image, r components.Rect, camX float64, c color.Color) {
	vector.StrokeRect(screen, float32(r.X-camX), float32(r.Y), float32(r.W), float32(r.H), debugStroke, c, false)
}

func showHitboxes(ecs *ecs.ECS) bool {
	if cfg.Debug.ShowHitboxes {
		return true
	}
	entry, ok := components.Settings.First(ecs.World)
	return ok && components.Settings.Get(entry).ShowHitboxes
}

// DrawDebug outlines bodies (red, blue while blocking) and live hitboxes
// (green).
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if cfg.Debug.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	if !showHitboxes(ecs) {
		return
	}

	camX := cameraX(ecs.World)
	for _, e := range systems.Combatants(ecs.World) {
		c := components.Combatant.Get(e)
		body := components.Physics.Get(e).Body()

		bodyColor := cfg.UI.DebugBodyColor
		if c.Blocking {
			bodyColor = cfg.UI.DebugBlockColor
		}
		strokeRect(screen, body, camX, bodyColor)
		if c.Hitbox != nil {
			strokeRect(screen, *c.Hitbox, camX, cfg.UI.DebugHitboxColor)
		}
	}
}
