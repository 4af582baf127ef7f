package factory

import (
	"github.com/automoto/pocalucha/archetypes"
	"github.com/automoto/pocalucha/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}
