package components

import "github.com/yohamta/donburi"

// ClockData is the simulation time of the last tick (singleton).
type ClockData struct {
	Delta   float64
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
