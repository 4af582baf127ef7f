package animations

import (
	"errors"
	"fmt"

	"github.com/automoto/pocalucha/config"
)

// ErrEmptyClip is returned when a clip is built without frames.
var ErrEmptyClip = errors.New("animation clip has no frames")

// Frame is an opaque image handle owned by whoever loaded the clip.
type Frame interface{}

// Clip is an ordered list of frames played at a fixed rate.
type Clip struct {
	Name          string
	Frames        []Frame
	FrameDuration float64 // seconds per frame
}

// NewClip validates and builds a clip.
func NewClip(name string, frames []Frame, frameDuration float64) (*Clip, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("clip %q: %w", name, ErrEmptyClip)
	}
	if frameDuration <= 0 {
		return nil, fmt.Errorf("clip %q: frame duration must be positive, got %v", name, frameDuration)
	}
	return &Clip{Name: name, Frames: frames, FrameDuration: frameDuration}, nil
}

// Len returns the number of frames in the clip.
func (c *Clip) Len() int {
	return len(c.Frames)
}

// Animator plays one clip at a time out of a fixed set keyed by state.
type Animator struct {
	clips   map[config.StateID]*Clip
	current config.StateID
	clip    *Clip

	frame  int
	timer  float64
	loops  int
	limit  int // -1 loops forever
	done   bool
	frozen bool
}

// NewAnimator builds an animator positioned on the first frame of initial.
func NewAnimator(clips map[config.StateID]*Clip, initial config.StateID) (*Animator, error) {
	for id, c := range clips {
		if c == nil || c.Len() == 0 {
			return nil, fmt.Errorf("clip for state %s: %w", id, ErrEmptyClip)
		}
	}
	a := &Animator{
		clips:   clips,
		current: config.StateNone,
		limit:   -1,
	}
	if _, ok := clips[initial]; !ok {
		return nil, fmt.Errorf("no clip for initial state %s", initial)
	}
	a.SelectClip(initial, -1)
	return a, nil
}

// SelectClip switches to the clip for id. Selecting the active clip again is
// a no-op; switching rewinds to frame 0 and clears loop count and freeze.
// Unknown ids leave the animator untouched and return false.
func (a *Animator) SelectClip(id config.StateID, loopLimit int) bool {
	if id == a.current {
		return true
	}
	c, ok := a.clips[id]
	if !ok {
		return false
	}
	a.current = id
	a.clip = c
	a.frame = 0
	a.timer = 0
	a.loops = 0
	a.limit = loopLimit
	a.done = false
	a.frozen = false
	return true
}

// Advance moves the animation forward by dt seconds. Leftover time below one
// frame duration is kept for the next call.
func (a *Animator) Advance(dt float64) {
	if a.clip == nil || a.frozen || a.done || dt <= 0 {
		return
	}
	a.timer += dt
	dur := a.clip.FrameDuration
	if a.timer < dur {
		return
	}

	steps := int(a.timer / dur)
	a.timer -= float64(steps) * dur
	n := a.clip.Len()

	for steps > 0 {
		// Jump straight to the end of the current pass.
		toEnd := n - 1 - a.frame
		if steps <= toEnd {
			a.frame += steps
			return
		}
		steps -= toEnd + 1

		if a.limit != -1 && a.loops >= a.limit {
			a.frame = n - 1
			a.timer = 0
			a.done = true
			return
		}
		a.loops++
		a.frame = 0

		// Whole passes left over on an infinite clip only bump the counter.
		if a.limit == -1 && steps >= n {
			a.loops += steps / n
			steps %= n
		}
	}
}

// Frame returns the frame handle to draw.
func (a *Animator) Frame() Frame {
	if a.clip == nil {
		return nil
	}
	return a.clip.Frames[a.frame]
}

func (a *Animator) Index() int {
	return a.frame
}

func (a *Animator) Loops() int {
	return a.loops
}

// Current returns the id of the active clip.
func (a *Animator) Current() config.StateID {
	return a.current
}

func (a *Animator) Clip() *Clip {
	return a.clip
}

// Finished reports whether a limited clip has stopped on its last frame.
func (a *Animator) Finished() bool {
	return a.done
}

// SetIndex pins the animation to frame i, clamped to the clip.
func (a *Animator) SetIndex(i int) {
	if a.clip == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if last := a.clip.Len() - 1; i > last {
		i = last
	}
	a.frame = i
}

// SetFrozen suspends or resumes the frame timer.
func (a *Animator) SetFrozen(frozen bool) {
	a.frozen = frozen
}

func (a *Animator) Frozen() bool {
	return a.frozen
}

// SetLoopLimit changes how many extra passes the clip plays. A limit already
// reached stops the clip on its last frame at the next wrap.
func (a *Animator) SetLoopLimit(n int) {
	a.limit = n
}

func (a *Animator) LoopLimit() int {
	return a.limit
}
