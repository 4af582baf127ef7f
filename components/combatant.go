package components

import (
	"github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether the two boxes share interior area. Touching edges
// do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

type CombatantData struct {
	Character config.CharacterID
	Slot      config.PlayerSlot

	BaseFacing float64 // facing when standing on the slot's home side
	Facing     float64 // +1 right, -1 left

	HitDamage int   // damage carried by Hitbox
	Hitbox    *Rect // nil outside an attack's active window

	Blocking           bool
	BlockDamageApplied bool // guard already absorbed a hit this block

	Invulnerable float64 // seconds left

	Stamina      int
	StaminaTimer float64

	Knockback float64 // signed horizontal speed, pixels/second

	HomeX, HomeY float64

	Input [config.InputActionCount]bool

	Alpha uint8
}

var Combatant = donburi.NewComponentType[CombatantData]()
