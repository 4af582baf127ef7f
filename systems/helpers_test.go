package systems_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/automoto/pocalucha/assets/animations"
	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/automoto/pocalucha/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// testChar uses binary-exact timings so tick counts are predictable.
const testChar cfg.CharacterID = 90

// tick is one frame of testChar's animations.
const tick = 1.0 / 16

func TestMain(m *testing.M) {
	cfg.Characters[testChar] = cfg.CharacterConfig{
		Name:      "Test",
		WalkSpeed: 128,
		Actions: [cfg.ActionCount]cfg.ActionConfig{
			// Long reach so a punch spans the default 400/1120 gap.
			cfg.ActionPunch: {Damage: 7, Stamina: 4, StartX: 0.5, EndX: 4.0, StartFrame: 2, EndFrame: 4},
			cfg.ActionKick:  {Damage: 10, Stamina: 6, StartX: 0.5, EndX: 1.5, StartFrame: 2, EndFrame: 4},
			cfg.ActionBlock: {Stamina: 2, StartFrame: 1, HoldFrame: 2, EndFrame: 4},
		},
		BlockDamageDivider:  3,
		KnockbackMultiplier: 1,
		FrameDuration:       tick,
		Clips: [cfg.StateCount]cfg.ClipDef{
			cfg.Idle:  {Template: "idle/%d", Count: 8},
			cfg.Walk:  {Template: "walk/%d", Count: 8},
			cfg.Punch: {Template: "punch/%d", Count: 8},
			cfg.Kick:  {Template: "kick/%d", Count: 8},
			cfg.Block: {Template: "block/%d", Count: 8},
			cfg.Hit:   {Template: "hit/%d", Count: 4},
			cfg.Dead:  {Template: "dead/%d", Count: 6},
		},
	}
	os.Exit(m.Run())
}

type stubFrames struct{}

func (stubFrames) Frames(template string, from, count int) ([]animations.Frame, error) {
	fs := make([]animations.Frame, count)
	for i := range fs {
		fs[i] = fmt.Sprintf(template, from+i)
	}
	return fs, nil
}

type match struct {
	w      donburi.World
	p1, p2 *donburi.Entry
}

// newMatch builds a world with the default stage, a hurtbox space, camera,
// round and two test combatants on their home marks.
func newMatch(t *testing.T) *match {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w, 32)
	factory.CreateCamera(w)
	factory.CreateRound(w)

	p1, err := factory.CreateCombatant(w, testChar, cfg.PlayerOne, stubFrames{})
	require.NoError(t, err)
	p2, err := factory.CreateCombatant(w, testChar, cfg.PlayerTwo, stubFrames{})
	require.NoError(t, err)
	return &match{w: w, p1: p1, p2: p2}
}

func (m *match) step(n int) {
	for i := 0; i < n; i++ {
		systems.Step(m.w, tick)
	}
}

func (m *match) press(e *donburi.Entry, a cfg.InputAction) {
	systems.HandleInput(e, a, true)
}

func (m *match) release(e *donburi.Entry, a cfg.InputAction) {
	systems.HandleInput(e, a, false)
}

func setX(e *donburi.Entry, x float64) {
	components.Physics.Get(e).Position.X = x
}

func stateOf(e *donburi.Entry) cfg.StateID {
	return components.State.Get(e).Current
}

func healthOf(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

func requireInvariantPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, systems.ErrInvariantViolation), "unexpected panic %v", err)
	}()
	fn()
}
