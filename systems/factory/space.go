package factory

import (
	"github.com/automoto/pocalucha/archetypes"
	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the hurtbox space for the world's stage. It must exist
// before combatants are created for them to get hurtboxes.
func CreateSpace(w donburi.World, cellSize int) *donburi.Entry {
	stage := components.StageOf(w)

	// Shift everything right so the leftmost reachable pixel, a left-facing
	// attack from the left wall, still lands in a valid cell.
	offset := -stage.MinX + cfg.Combatant.Width
	if offset < 0 {
		offset = 0
	}
	width := int(stage.MaxX + offset + cfg.Combatant.Width*3)
	height := int(stage.Height + cfg.Combatant.Height)

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(width, height, cellSize, cellSize),
		OffsetX: offset,
	})
	return space
}
