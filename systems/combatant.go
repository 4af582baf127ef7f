package systems

import (
	"math"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// HitOutcome reports what ReceiveHit did.
type HitOutcome int

const (
	HitIgnored HitOutcome = iota // hit-stunned, dead, invulnerable or guard spent
	HitBlocked
	HitTaken
	HitLethal
)

func (o HitOutcome) String() string {
	switch o {
	case HitIgnored:
		return "ignored"
	case HitBlocked:
		return "blocked"
	case HitTaken:
		return "taken"
	case HitLethal:
		return "lethal"
	}
	return "unknown"
}

// HandleInput records a press or release. It is read on the next tick.
func HandleInput(e *donburi.Entry, action cfg.InputAction, pressed bool) {
	if action < 0 || action >= cfg.InputActionCount {
		invariant("input action %d out of range", action)
	}
	components.Combatant.Get(e).Input[action] = pressed
}

func character(id cfg.CharacterID) *cfg.CharacterConfig {
	c, ok := cfg.Characters[id]
	if !ok {
		invariant("no configuration for character %d", id)
	}
	return &c
}

// TickCombatant advances one combatant by dt seconds: timers, state machine,
// movement and animation, in that order.
func TickCombatant(e *donburi.Entry, dt float64) {
	if dt < 0 {
		invariant("negative time step %v", dt)
	}
	c := components.Combatant.Get(e)
	state := components.State.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)
	char := character(c.Character)

	if c.Invulnerable > 0 {
		c.Invulnerable = math.Max(0, c.Invulnerable-dt)
	}
	regenStamina(c, dt)

	updateState(e, c, state, physics, anim, char)

	physics.Position.X += physics.Velocity.X * dt
	physics.Position.Y += physics.Velocity.Y * dt
	integrateKnockback(c, physics, dt)

	stage := components.StageOf(e.World)
	physics.Position.X = clamp(physics.Position.X, stage.MinX, stage.MaxX)

	// The hitbox follows the body through this tick's movement.
	if c.Hitbox != nil {
		if action, ok := state.Current.Action(); ok {
			hb := attackHitbox(physics, c.Facing, char.Action(action))
			c.Hitbox = &hb
		}
	}
	syncHurtbox(e, physics)

	state.Timer += dt
	c.Alpha = flashAlpha(c.Invulnerable, state.Timer)

	anim.Advance(dt)
}

func updateState(e *donburi.Entry, c *components.CombatantData, state *components.StateData,
	physics *components.PhysicsData, anim *components.AnimationData, char *cfg.CharacterConfig) {
	wantsWalk := c.Input[cfg.InputLeft] || c.Input[cfg.InputRight]
	settle := cfg.Idle
	if wantsWalk {
		settle = cfg.Walk
	}

	switch state.Current {
	case cfg.Idle, cfg.Walk:
		if action, ok := chooseAction(c, char); ok {
			c.Stamina -= char.Action(action).Stamina
			changeState(e, action.State())
			return
		}
		if state.Current == cfg.Idle && wantsWalk {
			changeState(e, cfg.Walk)
		} else if state.Current == cfg.Walk && !wantsWalk {
			changeState(e, cfg.Idle)
		}
		if state.Current == cfg.Walk {
			// Left is checked first and wins a simultaneous press.
			if c.Input[cfg.InputLeft] {
				physics.Velocity.X = -char.WalkSpeed
			} else {
				physics.Velocity.X = char.WalkSpeed
			}
		}

	case cfg.Punch, cfg.Kick, cfg.Block:
		if anim.Loops() > 0 {
			changeState(e, settle)
			return
		}
		action, _ := state.Current.Action()
		p := char.Action(action)
		frame := anim.Index()
		active := frame >= p.StartFrame && frame < p.EndFrame

		if state.Current.IsAttack() {
			if active {
				hb := attackHitbox(physics, c.Facing, p)
				c.Hitbox = &hb
				c.HitDamage = p.Damage
			} else {
				c.Hitbox = nil
			}
			return
		}

		if frame >= p.HoldFrame && c.Input[cfg.InputBlock] {
			anim.SetIndex(p.HoldFrame)
			anim.SetFrozen(true)
		} else {
			anim.SetFrozen(false)
		}
		c.Blocking = active

	case cfg.Hit:
		if anim.Loops() > 0 {
			changeState(e, settle)
		}

	case cfg.Dead:
		anim.SetLoopLimit(0)
	}
}

// chooseAction picks punch, kick then block, skipping any the combatant
// cannot pay for.
func chooseAction(c *components.CombatantData, char *cfg.CharacterConfig) (cfg.ActionID, bool) {
	candidates := [...]struct {
		input  cfg.InputAction
		action cfg.ActionID
	}{
		{cfg.InputPunch, cfg.ActionPunch},
		{cfg.InputKick, cfg.ActionKick},
		{cfg.InputBlock, cfg.ActionBlock},
	}
	for _, cand := range candidates {
		if c.Input[cand.input] && c.Stamina >= char.Action(cand.action).Stamina {
			return cand.action, true
		}
	}
	return 0, false
}

// changeState performs the entry side effects of next. Re-entering the
// current state does nothing.
func changeState(e *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(e)
	if state.Current == next {
		return
	}
	c := components.Combatant.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)

	state.Previous = state.Current
	state.Current = next
	state.Timer = 0

	c.Blocking = false
	c.BlockDamageApplied = false
	c.Hitbox = nil

	if !anim.SelectClip(next, -1) {
		invariant("no %s clip for character %d", next, c.Character)
	}

	if next != cfg.Walk {
		physics.Velocity.X = 0
	}

	if next.IsAttack() {
		PushEvent(e.World, components.Event{Kind: components.EventAttack, Slot: c.Slot, State: next})
	}
}

// ReceiveHit applies an incoming attack to the combatant.
func ReceiveHit(e *donburi.Entry, damage int, knockback float64) HitOutcome {
	if damage < 0 {
		invariant("negative damage %d", damage)
	}
	state := components.State.Get(e)
	if state.Current == cfg.Hit || state.Current == cfg.Dead {
		return HitIgnored
	}
	c := components.Combatant.Get(e)
	if c.Invulnerable > 0 {
		return HitIgnored
	}
	health := components.Health.Get(e)
	char := character(c.Character)

	knockback *= char.KnockbackMultiplier
	outcome := HitTaken

	if c.Blocking {
		if c.BlockDamageApplied {
			return HitIgnored
		}
		health.Current -= damage / char.BlockDamageDivider
		knockback *= cfg.Combat.BlockKnockbackScale
		c.BlockDamageApplied = true
		outcome = HitBlocked
	} else {
		health.Current -= damage
		changeState(e, cfg.Hit)
	}

	if health.Current <= 0 {
		health.Current = 0
		changeState(e, cfg.Dead)
		components.Physics.Get(e).Velocity = dmath.Vec2{}
		PushEvent(e.World, components.Event{Kind: components.EventKO, Slot: c.Slot})
		return HitLethal
	}

	c.Knockback -= knockback * c.Facing

	kind := components.EventHit
	if outcome == HitBlocked {
		kind = components.EventBlock
	}
	PushEvent(e.World, components.Event{Kind: kind, Slot: c.Slot})
	return outcome
}

// ResetCombatant puts the combatant back on its home mark with full stats.
func ResetCombatant(e *donburi.Entry) {
	c := components.Combatant.Get(e)
	physics := components.Physics.Get(e)
	health := components.Health.Get(e)
	state := components.State.Get(e)

	changeState(e, cfg.Idle)
	state.Timer = 0

	physics.Position = dmath.NewVec2(c.HomeX, c.HomeY)
	physics.Velocity = dmath.Vec2{}

	health.Current = health.Max
	c.Stamina = cfg.Combatant.MaxStamina
	c.StaminaTimer = 0
	c.Knockback = 0
	c.Hitbox = nil
	c.HitDamage = 0
	c.Blocking = false
	c.BlockDamageApplied = false
	c.Invulnerable = cfg.Combatant.RespawnInvulnerability
	c.Alpha = flashAlpha(c.Invulnerable, 0)

	syncHurtbox(e, physics)
}

func regenStamina(c *components.CombatantData, dt float64) {
	period := cfg.Combatant.StaminaPeriod
	c.StaminaTimer += dt
	if c.StaminaTimer < period {
		return
	}
	n := math.Floor(c.StaminaTimer / period)
	c.StaminaTimer -= n * period
	if room := float64(cfg.Combatant.MaxStamina - c.Stamina); n > room {
		n = math.Max(room, 0)
	}
	c.Stamina += int(n)
}

// integrateKnockback moves the body by the knockback speed as it decays
// linearly toward zero. A step longer than the remaining slide stops it
// exactly at zero.
func integrateKnockback(c *components.CombatantData, physics *components.PhysicsData, dt float64) {
	if c.Knockback == 0 || dt == 0 {
		return
	}
	sign := 1.0
	if c.Knockback < 0 {
		sign = -1.0
	}
	speed := math.Abs(c.Knockback)
	decay := cfg.Combat.KnockbackDecay

	if stop := speed / decay; dt >= stop {
		physics.Position.X += sign * speed * stop / 2
		c.Knockback = 0
		return
	}
	physics.Position.X += sign * (speed*dt - decay*dt*dt/2)
	c.Knockback = sign * (speed - decay*dt)
}

// attackHitbox reaches forward from the body centre by the action's start
// and end fractions of half the body width.
func attackHitbox(physics *components.PhysicsData, facing float64, p cfg.ActionConfig) components.Rect {
	half := physics.Width / 2
	cx := physics.CenterX()
	left, right := cx+p.StartX*half, cx+p.EndX*half
	if facing < 0 {
		left, right = cx-p.EndX*half, cx-p.StartX*half
	}
	return components.Rect{X: left, Y: physics.Position.Y, W: right - left, H: physics.Height}
}

func flashAlpha(invulnerable, stateTimer float64) uint8 {
	if invulnerable <= 0 {
		return cfg.Combat.FlashAlphaHigh
	}
	if int(stateTimer*cfg.Combat.FlashRate)%2 == 0 {
		return cfg.Combat.FlashAlphaLow
	}
	return cfg.Combat.FlashAlphaHigh
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
