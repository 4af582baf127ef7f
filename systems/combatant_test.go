package systems_test

import (
	"testing"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdleWalkToggleWithoutActions(t *testing.T) {
	m := newMatch(t)
	script := []struct{ left, right bool }{
		{false, false}, {true, false}, {true, false}, {false, false},
		{false, true}, {true, true}, {false, true}, {false, false},
		{false, false}, {true, false}, {false, false}, {false, true},
	}

	for i, in := range script {
		systems.HandleInput(m.p1, cfg.InputLeft, in.left)
		systems.HandleInput(m.p1, cfg.InputRight, in.right)
		m.step(1)

		want := cfg.Idle
		if in.left || in.right {
			want = cfg.Walk
		}
		assert.Equal(t, want, stateOf(m.p1), "step %d", i)
	}
}

func TestWalkVelocity(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"left", true, false, -128},
		{"right", false, true, 128},
		{"left wins a simultaneous press", true, true, -128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(t)
			systems.HandleInput(m.p1, cfg.InputLeft, tt.left)
			systems.HandleInput(m.p1, cfg.InputRight, tt.right)
			m.step(1)

			physics := components.Physics.Get(m.p1)
			assert.Equal(t, cfg.Walk, stateOf(m.p1))
			assert.Equal(t, tt.want, physics.Velocity.X)
			assert.InDelta(t, 400+tt.want*tick, physics.Position.X, 1e-9)
		})
	}
}

func TestStaminaGating(t *testing.T) {
	tests := []struct {
		name    string
		stamina int
		inputs  []cfg.InputAction
		want    cfg.StateID
		left    int
	}{
		{"too tired for anything", 1, []cfg.InputAction{cfg.InputPunch, cfg.InputKick, cfg.InputBlock}, cfg.Idle, 1},
		{"too tired to punch", 3, []cfg.InputAction{cfg.InputPunch}, cfg.Idle, 3},
		{"punch when affordable", 4, []cfg.InputAction{cfg.InputPunch, cfg.InputKick}, cfg.Punch, 0},
		{"kick when affordable", 6, []cfg.InputAction{cfg.InputKick}, cfg.Kick, 0},
		{"falls through to block", 3, []cfg.InputAction{cfg.InputPunch, cfg.InputKick, cfg.InputBlock}, cfg.Block, 1},
		{"punch beats kick", 20, []cfg.InputAction{cfg.InputPunch, cfg.InputKick}, cfg.Punch, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(t)
			components.Combatant.Get(m.p1).Stamina = tt.stamina
			for _, in := range tt.inputs {
				m.press(m.p1, in)
			}
			m.step(1)

			assert.Equal(t, tt.want, stateOf(m.p1))
			assert.Equal(t, tt.left, components.Combatant.Get(m.p1).Stamina)
		})
	}
}

func TestStaminaRegeneration(t *testing.T) {
	m := newMatch(t)
	c := components.Combatant.Get(m.p1)
	c.Stamina = 10

	systems.TickCombatant(m.p1, 1.25)
	assert.Equal(t, 12, c.Stamina)
	assert.InDelta(t, 0.25, c.StaminaTimer, 1e-9)

	systems.TickCombatant(m.p1, 1000)
	assert.Equal(t, cfg.Combatant.MaxStamina, c.Stamina)
}

func TestAttackReturnsToIdleAfterOnePass(t *testing.T) {
	m := newMatch(t)
	m.press(m.p1, cfg.InputKick)
	m.step(1)
	m.release(m.p1, cfg.InputKick)
	require.Equal(t, cfg.Kick, stateOf(m.p1))

	// Eight frames then one more tick to notice the wrap.
	m.step(7)
	assert.Equal(t, cfg.Kick, stateOf(m.p1))
	m.step(1)
	assert.Equal(t, cfg.Idle, stateOf(m.p1))
	assert.Nil(t, components.Combatant.Get(m.p1).Hitbox)
}

func TestAttackHitboxWindow(t *testing.T) {
	m := newMatch(t)
	c := components.Combatant.Get(m.p1)

	m.press(m.p1, cfg.InputKick)
	m.step(2)
	m.release(m.p1, cfg.InputKick)
	assert.Nil(t, c.Hitbox, "frame 1 is before the window")

	m.step(1)
	require.NotNil(t, c.Hitbox)
	assert.Equal(t, components.Rect{X: 625, Y: 380, W: 150, H: 600}, *c.Hitbox)
	assert.Equal(t, 10, c.HitDamage)

	m.step(1)
	assert.NotNil(t, c.Hitbox)
	m.step(1)
	assert.Nil(t, c.Hitbox, "frame 4 is past the window")
}

func TestHitboxMirrorsWhenFacingLeft(t *testing.T) {
	m := newMatch(t)
	c := components.Combatant.Get(m.p2)

	m.press(m.p2, cfg.InputKick)
	m.step(3)

	require.NotNil(t, c.Hitbox)
	// Body 1220..1520, centre 1370, reach 0.5..1.5 of 150 to the left.
	assert.Equal(t, components.Rect{X: 1145, Y: 380, W: 150, H: 600}, *c.Hitbox)
}

func TestBlockHoldsWhileHeld(t *testing.T) {
	m := newMatch(t)
	c := components.Combatant.Get(m.p2)
	anim := components.Animation.Get(m.p2)

	m.press(m.p2, cfg.InputBlock)
	m.step(1)
	require.Equal(t, cfg.Block, stateOf(m.p2))
	assert.False(t, c.Blocking)

	m.step(2)
	assert.True(t, c.Blocking)
	assert.True(t, anim.Frozen())
	assert.Equal(t, 2, anim.Index())

	m.step(40)
	assert.Equal(t, cfg.Block, stateOf(m.p2))
	assert.Equal(t, 2, anim.Index())
	assert.True(t, c.Blocking)

	m.release(m.p2, cfg.InputBlock)
	m.step(1)
	assert.False(t, anim.Frozen())
	m.step(10)
	assert.Equal(t, cfg.Idle, stateOf(m.p2))
	assert.False(t, c.Blocking)
}

func TestBlockDamageReduction(t *testing.T) {
	m := newMatch(t)
	c := components.Combatant.Get(m.p2)
	m.press(m.p2, cfg.InputBlock)
	m.step(3)
	require.True(t, c.Blocking)
	require.False(t, c.BlockDamageApplied)

	outcome := systems.ReceiveHit(m.p2, 30, 10)
	assert.Equal(t, systems.HitBlocked, outcome)
	assert.Equal(t, 90, healthOf(m.p2))
	assert.Equal(t, cfg.Block, stateOf(m.p2))
	// Facing left, so the reduced push goes right.
	assert.InDelta(t, 4.0, c.Knockback, 1e-9)

	outcome = systems.ReceiveHit(m.p2, 30, 10)
	assert.Equal(t, systems.HitIgnored, outcome)
	assert.Equal(t, 90, healthOf(m.p2))
	assert.Equal(t, cfg.Block, stateOf(m.p2))
}

func TestReceiveHitTakesFullDamage(t *testing.T) {
	m := newMatch(t)
	c := components.Combatant.Get(m.p1)

	outcome := systems.ReceiveHit(m.p1, 12, 100)
	assert.Equal(t, systems.HitTaken, outcome)
	assert.Equal(t, 88, healthOf(m.p1))
	assert.Equal(t, cfg.Hit, stateOf(m.p1))
	assert.InDelta(t, -100.0, c.Knockback, 1e-9)
}

func TestReceiveHitIgnored(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *match)
	}{
		{"while hit-stunned", func(m *match) { systems.ReceiveHit(m.p1, 5, 0) }},
		{"while dead", func(m *match) { systems.ReceiveHit(m.p1, 1000, 0) }},
		{"while invulnerable", func(m *match) { components.Combatant.Get(m.p1).Invulnerable = 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(t)
			tt.setup(m)
			before := healthOf(m.p1)
			state := stateOf(m.p1)
			knockback := components.Combatant.Get(m.p1).Knockback

			assert.Equal(t, systems.HitIgnored, systems.ReceiveHit(m.p1, 10, 300))
			assert.Equal(t, before, healthOf(m.p1))
			assert.Equal(t, state, stateOf(m.p1))
			assert.Equal(t, knockback, components.Combatant.Get(m.p1).Knockback)
		})
	}
}

func TestLethalHit(t *testing.T) {
	tests := []struct {
		name     string
		blocking bool
	}{
		{"open", false},
		{"through a block", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(t)
			c := components.Combatant.Get(m.p1)
			physics := components.Physics.Get(m.p1)
			components.Health.Get(m.p1).Current = 3
			c.Knockback = -50
			physics.Velocity.X = 128
			c.Blocking = tt.blocking

			outcome := systems.ReceiveHit(m.p1, 12, 300)
			assert.Equal(t, systems.HitLethal, outcome)
			assert.Equal(t, cfg.Dead, stateOf(m.p1))
			assert.Equal(t, 0, healthOf(m.p1))
			assert.Zero(t, physics.Velocity.X)
			assert.Zero(t, physics.Velocity.Y)
			assert.Equal(t, -50.0, c.Knockback, "knockback is not applied on a lethal hit")
		})
	}
}

func TestDeadIsTerminal(t *testing.T) {
	m := newMatch(t)
	systems.ReceiveHit(m.p1, 1000, 0)
	for _, a := range []cfg.InputAction{cfg.InputLeft, cfg.InputPunch, cfg.InputKick, cfg.InputBlock} {
		m.press(m.p1, a)
	}

	// Stays down long enough for the death clip to finish, but inside the KO grace.
	for i := 0; i < 20; i++ {
		m.step(1)
		require.Equal(t, cfg.Dead, stateOf(m.p1))
	}
	anim := components.Animation.Get(m.p1)
	assert.True(t, anim.Finished())
	assert.Equal(t, anim.Clip().Len()-1, anim.Index())
	assert.Equal(t, 0, anim.LoopLimit())
}

func TestInvariantViolations(t *testing.T) {
	m := newMatch(t)

	requireInvariantPanic(t, func() { systems.ReceiveHit(m.p1, -1, 0) })
	requireInvariantPanic(t, func() { systems.TickCombatant(m.p1, -0.01) })
	requireInvariantPanic(t, func() { systems.Step(m.w, -1) })
	requireInvariantPanic(t, func() { systems.HandleInput(m.p1, cfg.InputActionCount, true) })

	components.Combatant.Get(m.p1).Character = 12345
	requireInvariantPanic(t, func() { systems.TickCombatant(m.p1, tick) })
}

func TestKnockbackDecaysWithoutOscillation(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		steps []float64
	}{
		{"small steps right", 300, []float64{tick, tick, tick, tick, tick, tick, tick, tick, tick, tick}},
		{"uneven steps left", -300, []float64{0.01, 0.2, 0.03, 0.11, 0.07, 0.4}},
		{"one long stall", 300, []float64{10}},
		{"overshoot from a sliver", 0.5, []float64{0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(t)
			c := components.Combatant.Get(m.p1)
			physics := components.Physics.Get(m.p1)
			c.Knockback = tt.start
			startX := physics.Position.X

			prev := tt.start
			for _, dt := range tt.steps {
				systems.TickCombatant(m.p1, dt)
				assert.False(t, c.Knockback*tt.start < 0, "knockback changed sign: %v", c.Knockback)
				assert.LessOrEqual(t, abs(c.Knockback), abs(prev))
				prev = c.Knockback
			}

			assert.Equal(t, 0.0, c.Knockback)
			// Total slide of a linearly decaying speed: v^2 / 2a.
			want := tt.start * abs(tt.start) / (2 * cfg.Combat.KnockbackDecay)
			assert.InDelta(t, startX+want, physics.Position.X, 1e-6)
		})
	}
}

func TestPositionClampedToStage(t *testing.T) {
	m := newMatch(t)
	c := components.Combatant.Get(m.p1)
	c.Knockback = -5000

	systems.TickCombatant(m.p1, 10)
	assert.Equal(t, cfg.Stage.MinX, components.Physics.Get(m.p1).Position.X)

	components.Combatant.Get(m.p2).Knockback = 5000
	systems.TickCombatant(m.p2, 10)
	assert.Equal(t, cfg.Stage.MaxX, components.Physics.Get(m.p2).Position.X)
}

func TestInvulnerabilityFlash(t *testing.T) {
	m := newMatch(t)
	c := components.Combatant.Get(m.p1)
	assert.Equal(t, uint8(255), c.Alpha)

	systems.ResetCombatant(m.p1)
	require.InDelta(t, cfg.Combatant.RespawnInvulnerability, c.Invulnerable, 1e-9)

	// Toggles every tenth of a second of state time.
	want := []uint8{128, 255, 255, 128}
	for i, alpha := range want {
		m.step(1)
		assert.Equal(t, alpha, c.Alpha, "tick %d", i+1)
	}

	m.step(30)
	assert.Zero(t, c.Invulnerable)
	assert.Equal(t, uint8(255), c.Alpha)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
