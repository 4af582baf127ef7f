package components

import (
	"github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	Current  config.StateID
	Previous config.StateID
	Timer    float64 // seconds spent in Current
}

var State = donburi.NewComponentType[StateData]()
