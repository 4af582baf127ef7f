package animations_test

import (
	"testing"

	"github.com/automoto/pocalucha/assets/animations"
	"github.com/automoto/pocalucha/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frames(n int) []animations.Frame {
	fs := make([]animations.Frame, n)
	for i := range fs {
		fs[i] = i
	}
	return fs
}

func newTestAnimator(t *testing.T, n int) *animations.Animator {
	t.Helper()
	idle, err := animations.NewClip("idle", frames(n), 0.25)
	require.NoError(t, err)
	punch, err := animations.NewClip("punch", frames(n+2), 0.25)
	require.NoError(t, err)
	a, err := animations.NewAnimator(map[config.StateID]*animations.Clip{
		config.Idle:  idle,
		config.Punch: punch,
	}, config.Idle)
	require.NoError(t, err)
	return a
}

func TestNewClipRejectsEmptyFrames(t *testing.T) {
	_, err := animations.NewClip("empty", nil, 0.1)
	assert.ErrorIs(t, err, animations.ErrEmptyClip)

	_, err = animations.NewClip("zero", frames(2), 0)
	assert.Error(t, err)
}

func TestNewAnimatorRejectsEmptyClip(t *testing.T) {
	_, err := animations.NewAnimator(map[config.StateID]*animations.Clip{
		config.Idle: {Name: "idle", FrameDuration: 0.1},
	}, config.Idle)
	assert.ErrorIs(t, err, animations.ErrEmptyClip)
}

func TestAdvanceCarriesLeftoverTime(t *testing.T) {
	a := newTestAnimator(t, 4)

	a.Advance(0.125)
	assert.Equal(t, 0, a.Index())
	a.Advance(0.125)
	assert.Equal(t, 1, a.Index())

	// 0.375 = one frame plus half a frame kept for later.
	a.Advance(0.375)
	assert.Equal(t, 2, a.Index())
	a.Advance(0.125)
	assert.Equal(t, 3, a.Index())
}

func TestAdvanceWrapsAndCountsLoops(t *testing.T) {
	a := newTestAnimator(t, 4)

	a.Advance(1.0)
	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 1, a.Loops())

	// Ten passes and one frame in a single call.
	a.Advance(10.25)
	assert.Equal(t, 1, a.Index())
	assert.Equal(t, 11, a.Loops())
}

func TestLoopLimitStopsOnLastFrame(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		steps []float64
	}{
		{"play once in small steps", 0, []float64{0.25, 0.25, 0.25, 0.25, 0.25, 0.25}},
		{"play once in one call", 0, []float64{100}},
		{"two extra passes", 2, []float64{0.5, 1.0, 1.25, 0.5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnimator(t, 4)
			a.SelectClip(config.Punch, tt.limit)
			for _, dt := range tt.steps {
				a.Advance(dt)
			}
			assert.Equal(t, 5, a.Index())
			assert.Equal(t, tt.limit, a.Loops())
			assert.True(t, a.Finished())

			a.Advance(5)
			assert.Equal(t, 5, a.Index())
		})
	}
}

func TestIndexIsMonotonicBetweenWraps(t *testing.T) {
	a := newTestAnimator(t, 5)
	steps := []float64{0, 0.01, 0.3, 0.07, 0.9, 0.2, 0, 2.3, 0.11, 0.6, 0.05, 7.77}

	prevIndex, prevLoops := a.Index(), a.Loops()
	for _, dt := range steps {
		a.Advance(dt)
		assert.GreaterOrEqual(t, a.Index(), 0)
		assert.Less(t, a.Index(), 5)
		if a.Loops() == prevLoops {
			assert.GreaterOrEqual(t, a.Index(), prevIndex)
		}
		prevIndex, prevLoops = a.Index(), a.Loops()
	}
}

func TestSelectClip(t *testing.T) {
	a := newTestAnimator(t, 4)
	a.Advance(1.5)
	require.Equal(t, 1, a.Loops())
	require.Equal(t, 2, a.Index())

	// Reselecting the active clip keeps progress.
	a.SelectClip(config.Idle, 0)
	assert.Equal(t, 2, a.Index())
	assert.Equal(t, 1, a.Loops())
	assert.Equal(t, -1, a.LoopLimit())

	a.SetFrozen(true)
	assert.True(t, a.SelectClip(config.Punch, -1))
	assert.Equal(t, config.Punch, a.Current())
	assert.Equal(t, 0, a.Index())
	assert.Equal(t, 0, a.Loops())
	assert.False(t, a.Frozen())
	assert.Equal(t, "punch", a.Clip().Name)

	assert.False(t, a.SelectClip(config.Dead, 0))
	assert.Equal(t, config.Punch, a.Current())
}

func TestFrozenSuspendsTimer(t *testing.T) {
	a := newTestAnimator(t, 8)
	a.Advance(0.5)
	a.SetIndex(6)
	a.SetFrozen(true)

	a.Advance(3)
	assert.Equal(t, 6, a.Index())
	assert.Equal(t, 6, a.Frame())

	a.SetFrozen(false)
	a.Advance(0.25)
	assert.Equal(t, 7, a.Index())
}

func TestSetIndexClamps(t *testing.T) {
	a := newTestAnimator(t, 3)
	a.SetIndex(10)
	assert.Equal(t, 2, a.Index())
	a.SetIndex(-4)
	assert.Equal(t, 0, a.Index())
}
