package archetypes

import (
	"github.com/automoto/pocalucha/components"
	"github.com/automoto/pocalucha/tags"
	"github.com/yohamta/donburi"
)

var (
	Combatant = newArchetype(
		tags.Combatant,
		components.Combatant,
		components.Object,
		components.Health,
		components.HealthBar,
		components.Lives,
		components.Animation,
		components.Physics,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Round = newArchetype(
		components.Round,
		components.Events,
		components.Clock,
		components.Banner,
	)
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
	)
	Settings = newArchetype(
		components.Settings,
		components.Record,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
