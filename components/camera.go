package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Offset math.Vec2 // subtracted from world coordinates when drawing
	Target math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
