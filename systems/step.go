package systems

import (
	"github.com/automoto/pocalucha/components"
	"github.com/yohamta/donburi"
)

// UpdateCombatants ticks every combatant in slot order.
func UpdateCombatants(w donburi.World, dt float64) {
	for _, e := range Combatants(w) {
		TickCombatant(e, dt)
	}
}

// Resolve runs the cross-combatant part of a tick: hits, facing, round
// bookkeeping and the camera.
func Resolve(w donburi.World, dt float64) {
	if dt < 0 {
		invariant("negative time step %v", dt)
	}
	UpdateCombat(w)
	UpdateFacing(w)
	UpdateRound(w)
	UpdateCamera(w, dt)
}

// Step advances the whole simulation by dt seconds. Inputs must already be
// recorded with HandleInput.
func Step(w donburi.World, dt float64) {
	if dt < 0 {
		invariant("negative time step %v", dt)
	}
	if entry, ok := components.Clock.First(w); ok {
		clock := components.Clock.Get(entry)
		clock.Delta = dt
		clock.Elapsed += dt
		clock.Ticks++
	}
	UpdateCombatants(w, dt)
	Resolve(w, dt)
	UpdateHealthBars(w, dt)
}
