package render

import (
	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// cameraX returns the horizontal scroll applied to everything in the world.
func cameraX(w donburi.World) float64 {
	entry, ok := components.Camera.First(w)
	if !ok {
		return 0
	}
	return components.Camera.Get(entry).Offset.X
}

// DrawStage returns a renderer for the stage backdrop. A nil background
// leaves the cleared screen with a floor line.
func DrawStage(background *ebiten.Image) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		stage := components.StageOf(ecs.World)
		camX := cameraX(ecs.World)

		if background == nil {
			floorY := stage.GroundY + cfg.Combatant.Height
			fillRect(screen, 0, floorY, float64(cfg.C.Width), 4, cfg.DarkGray)
			return
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(stage.MinX-camX, 0)
		screen.DrawImage(background, drawOp)
	}
}

// DrawCombatants draws each fighter's current frame centred on its body,
// mirrored when facing left.
func DrawCombatants(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := cameraX(ecs.World)

	for _, e := range systems.Combatants(ecs.World) {
		img, ok := components.Animation.Get(e).Frame().(*ebiten.Image)
		if !ok || img == nil {
			continue
		}
		c := components.Combatant.Get(e)
		physics := components.Physics.Get(e)
		fw, fh := img.Bounds().Dx(), img.Bounds().Dy()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at the sprite centre so the flip keeps it in place.
		drawOp.GeoM.Translate(-float64(fw)/2, -float64(fh)/2)
		if c.Facing < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(
			physics.CenterX()+cfg.Combatant.SpriteOffsetX-camX,
			physics.Position.Y+physics.Height/2+cfg.Combatant.SpriteOffsetY,
		)
		drawOp.ColorScale.ScaleAlpha(float32(c.Alpha) / 255)

		screen.DrawImage(img, drawOp)
	}
}
