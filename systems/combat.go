package systems

import (
	"sort"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/tags"
	"github.com/yohamta/donburi"
)

// Combatants returns every combatant ordered by slot.
func Combatants(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Combatant.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Combatant.Get(out[i]).Slot < components.Combatant.Get(out[j]).Slot
	})
	return out
}

type pendingHit struct {
	defender *donburi.Entry
	damage   int
}

// UpdateCombat lands every active hitbox that overlaps an opponent's body.
// All overlaps are collected before any is applied so that two attacks
// landing on the same tick both count.
func UpdateCombat(w donburi.World) {
	fighters := Combatants(w)

	var hits []pendingHit
	for _, attacker := range fighters {
		c := components.Combatant.Get(attacker)
		if c.Hitbox == nil {
			continue
		}
		for _, defender := range fighters {
			if defender == attacker {
				continue
			}
			if hitboxLands(w, *c.Hitbox, defender) {
				hits = append(hits, pendingHit{defender: defender, damage: c.HitDamage})
			}
		}
	}

	for _, h := range hits {
		ReceiveHit(h.defender, h.damage, cfg.Combat.HitKnockback)
	}
}

func hitboxLands(w donburi.World, hitbox components.Rect, defender *donburi.Entry) bool {
	if !broadPhase(w, hitbox, defender) {
		return false
	}
	return hitbox.Overlaps(components.Physics.Get(defender).Body())
}

// UpdateFacing turns both combatants toward each other. Each keeps its
// slot's base facing until player one crosses to the right of player two.
func UpdateFacing(w donburi.World) {
	fighters := Combatants(w)
	if len(fighters) < 2 {
		return
	}
	p1 := components.Physics.Get(fighters[0])
	p2 := components.Physics.Get(fighters[1])
	flip := p1.Position.X > p2.Position.X

	for _, e := range fighters {
		c := components.Combatant.Get(e)
		c.Facing = c.BaseFacing
		if flip {
			c.Facing = -c.BaseFacing
		}
	}
}
