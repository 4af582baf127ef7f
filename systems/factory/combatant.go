package factory

import (
	"fmt"

	"github.com/automoto/pocalucha/archetypes"
	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/automoto/pocalucha/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCombatant spawns a fighter on its slot's home mark. Nothing is added
// to the world when the character is unknown or its frames cannot be loaded.
func CreateCombatant(w donburi.World, id cfg.CharacterID, slot cfg.PlayerSlot, provider FrameProvider) (*donburi.Entry, error) {
	if slot < 0 || slot >= cfg.PlayerSlotCount {
		return nil, fmt.Errorf("slot %d out of range", slot)
	}
	animator, err := LoadCharacter(id, provider)
	if err != nil {
		return nil, err
	}

	stage := components.StageOf(w)
	x, y := stage.HomeX[slot], stage.GroundY
	width, height := cfg.Combatant.Width, cfg.Combatant.Height

	facing := cfg.DirectionRight
	if slot == cfg.PlayerTwo {
		facing = cfg.DirectionLeft
	}

	fighter := archetypes.Combatant.Spawn(w)

	components.Combatant.SetValue(fighter, components.CombatantData{
		Character:  id,
		Slot:       slot,
		BaseFacing: facing,
		Facing:     facing,
		Stamina:    cfg.Combatant.MaxStamina,
		HomeX:      x,
		HomeY:      y,
		Alpha:      cfg.Combat.FlashAlphaHigh,
	})
	components.State.SetValue(fighter, components.StateData{
		Current:  cfg.Idle,
		Previous: cfg.StateNone,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Position: math.NewVec2(x, y),
		Width:    width,
		Height:   height,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Combatant.MaxHealth,
		Max:     cfg.Combatant.MaxHealth,
	})
	components.HealthBar.SetValue(fighter, components.HealthBarData{
		Shown:      float32(cfg.Combatant.MaxHealth),
		Target:     cfg.Combatant.MaxHealth,
		Stamina:    float32(cfg.Combatant.MaxStamina),
		StaminaMax: cfg.Combatant.MaxStamina,
	})
	components.Lives.SetValue(fighter, components.LivesData{
		Lives:    cfg.Round.StartingLives,
		MaxLives: cfg.Round.StartingLives,
	})
	components.Animation.SetValue(fighter, components.AnimationData{Animator: animator})

	if spaceEntry, ok := components.Space.First(w); ok {
		space := components.Space.Get(spaceEntry)
		obj := resolv.NewObject(x+space.OffsetX, y, width, height, tags.ResolvBody, systems.SlotTag(slot))
		obj.SetShape(resolv.NewRectangle(0, 0, width, height))
		obj.Data = fighter
		space.Add(obj)
		components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	}

	return fighter, nil
}
