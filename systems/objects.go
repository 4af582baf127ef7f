package systems

import (
	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// spaceOf returns the collision space, if the world has one.
func spaceOf(w donburi.World) (*components.SpaceData, bool) {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry), true
}

// syncHurtbox moves the combatant's resolv object onto its body.
func syncHurtbox(e *donburi.Entry, physics *components.PhysicsData) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	offset := 0.0
	if space, ok := spaceOf(e.World); ok {
		offset = space.OffsetX
	}
	obj.X = physics.Position.X + offset
	obj.Y = physics.Position.Y
	obj.Update()
}

// SlotTag is the resolv tag carried by the hurtbox of slot.
func SlotTag(slot cfg.PlayerSlot) string {
	if slot == cfg.PlayerOne {
		return tags.ResolvP1
	}
	return tags.ResolvP2
}

// broadPhase reports whether the hitbox shares any space cell with the
// defender's hurtbox. Worlds without a space always pass.
func broadPhase(w donburi.World, hitbox components.Rect, defender *donburi.Entry) bool {
	space, ok := spaceOf(w)
	target := components.Object.Get(defender).Object
	if !ok || target == nil {
		return true
	}

	probe := resolv.NewObject(hitbox.X+space.OffsetX, hitbox.Y, hitbox.W, hitbox.H)
	probe.SetShape(resolv.NewRectangle(0, 0, hitbox.W, hitbox.H))
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, SlotTag(components.Combatant.Get(defender).Slot))
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if o == target {
			return true
		}
	}
	return false
}
