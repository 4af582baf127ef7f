package systems_test

import (
	"testing"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// graceTicks is how many ticks a KO takes to end the round.
var graceTicks = int(cfg.Round.KOGrace / tick)

func roundOf(m *match) *components.RoundData {
	e, _ := components.Round.First(m.w)
	return components.Round.Get(e)
}

func eventKinds(evs []components.Event) []components.EventKind {
	var kinds []components.EventKind
	for _, ev := range evs {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func TestKOResetsRound(t *testing.T) {
	m := newMatch(t)
	setX(m.p1, 700)
	systems.ReceiveHit(m.p2, 1000, 0)
	systems.DrainEvents(m.w)

	m.step(graceTicks - 1)
	round := roundOf(m)
	assert.Equal(t, 1, round.Number)
	assert.Equal(t, cfg.RoundStateKO, round.State)
	assert.Equal(t, cfg.Dead, stateOf(m.p2))

	m.step(1)
	assert.Equal(t, 2, round.Number)
	assert.True(t, round.Active)
	assert.Equal(t, cfg.RoundStateFighting, round.State)

	assert.Equal(t, 3, components.Lives.Get(m.p1).Lives)
	assert.Equal(t, 2, components.Lives.Get(m.p2).Lives)

	homes := []struct {
		entry *donburi.Entry
		x     float64
	}{{m.p1, 400}, {m.p2, 1220}}
	for _, h := range homes {
		c := components.Combatant.Get(h.entry)
		assert.Equal(t, cfg.Idle, stateOf(h.entry))
		assert.Equal(t, 100, healthOf(h.entry))
		assert.Equal(t, cfg.Combatant.MaxStamina, c.Stamina)
		assert.Equal(t, h.x, components.Physics.Get(h.entry).Position.X)
		assert.Zero(t, c.Knockback)
		assert.InDelta(t, cfg.Combatant.RespawnInvulnerability, c.Invulnerable, 1e-9)
	}

	assert.Contains(t, eventKinds(systems.DrainEvents(m.w)), components.EventRoundReset)
}

func TestRespawnInvulnerabilityBlocksHits(t *testing.T) {
	m := newMatch(t)
	systems.ResetCombatant(m.p2)

	assert.Equal(t, systems.HitIgnored, systems.ReceiveHit(m.p2, 50, 0))
	m.step(int(cfg.Combatant.RespawnInvulnerability/tick) + 1)
	assert.Equal(t, systems.HitTaken, systems.ReceiveHit(m.p2, 50, 0))
}

func TestMatchEndsWhenLivesRunOut(t *testing.T) {
	m := newMatch(t)
	components.Lives.Get(m.p2).Lives = 1
	systems.ReceiveHit(m.p2, 1000, 0)

	m.step(graceTicks)
	round := roundOf(m)
	assert.False(t, round.Active)
	assert.Equal(t, cfg.RoundStateMatchOver, round.State)
	assert.Equal(t, cfg.PlayerOne, round.Winner)
	assert.Equal(t, 0, components.Lives.Get(m.p2).Lives)
	assert.Contains(t, eventKinds(systems.DrainEvents(m.w)), components.EventMatchOver)

	// Nothing more happens once the match is decided.
	m.step(graceTicks * 2)
	assert.Equal(t, 1, round.Number)
	assert.Equal(t, 0, components.Lives.Get(m.p2).Lives)
	assert.Equal(t, cfg.Dead, stateOf(m.p2))
}

func TestDoubleKOIsADraw(t *testing.T) {
	m := newMatch(t)
	components.Lives.Get(m.p1).Lives = 1
	components.Lives.Get(m.p2).Lives = 1
	systems.ReceiveHit(m.p1, 1000, 0)
	systems.ReceiveHit(m.p2, 1000, 0)

	m.step(graceTicks)
	round := roundOf(m)
	require.False(t, round.Active)
	assert.Equal(t, components.Draw, round.Winner)
}

func TestDoubleKOWithLivesLeftCostsBoth(t *testing.T) {
	m := newMatch(t)
	systems.ReceiveHit(m.p1, 1000, 0)
	m.step(4)
	systems.ReceiveHit(m.p2, 1000, 0)

	// The first to fall decides when the round ends.
	m.step(graceTicks - 4)
	assert.Equal(t, 2, roundOf(m).Number)
	assert.Equal(t, 2, components.Lives.Get(m.p1).Lives)
	assert.Equal(t, 2, components.Lives.Get(m.p2).Lives)
}
