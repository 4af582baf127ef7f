package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// HealthBarData holds the values the HUD draws. They trail the real numbers
// through a tween so losses drain instead of jumping.
type HealthBarData struct {
	Shown      float32 // displayed health
	Target     int
	Tween      *gween.Tween
	Stamina    float32 // displayed stamina
	StaminaMax int
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
