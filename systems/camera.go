package systems

import (
	"math"

	"github.com/automoto/pocalucha/components"
	"github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the horizontal offset toward the midpoint between the
// combatants. The remaining distance shrinks by Camera.Decay every second
// regardless of how the time is sliced into ticks.
func UpdateCamera(w donburi.World, dt float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	fighters := Combatants(w)
	if len(fighters) == 0 {
		return
	}

	mid := 0.0
	for _, e := range fighters {
		mid += components.Physics.Get(e).CenterX()
	}
	mid /= float64(len(fighters))

	stage := components.StageOf(w)
	camera.Target.X = mid - stage.Width/2

	keep := math.Pow(config.Camera.Decay, dt)
	camera.Offset.X = camera.Target.X + (camera.Offset.X-camera.Target.X)*keep
	camera.Offset.X = clamp(camera.Offset.X, -config.Camera.MaxOffset, config.Camera.MaxOffset)
}
