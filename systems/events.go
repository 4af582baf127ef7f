package systems

import (
	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

// AudioSink plays sound effects. The simulation never talks to it directly;
// the scene drains the event queue into it once per frame.
type AudioSink interface {
	Play(id cfg.SoundID)
}

var eventSounds = map[components.EventKind]cfg.SoundID{
	components.EventHit:        cfg.SoundHit,
	components.EventBlock:      cfg.SoundBlock,
	components.EventKO:         cfg.SoundKO,
	components.EventRoundReset: cfg.SoundRoundStart,
	components.EventMatchOver:  cfg.SoundVictory,
}

func soundFor(ev components.Event) cfg.SoundID {
	if ev.Kind == components.EventAttack {
		switch ev.State {
		case cfg.Punch:
			return cfg.SoundPunch
		case cfg.Kick:
			return cfg.SoundKick
		}
		return cfg.SoundNone
	}
	return eventSounds[ev.Kind]
}

// PushEvent queues ev if the world has an event queue.
func PushEvent(w donburi.World, ev components.Event) {
	entry, ok := components.Events.First(w)
	if !ok {
		return
	}
	if ev.Sound == cfg.SoundNone {
		ev.Sound = soundFor(ev)
	}
	events := components.Events.Get(entry)
	events.Pending = append(events.Pending, ev)
}

// DrainEvents returns and clears the queued events.
func DrainEvents(w donburi.World) []components.Event {
	entry, ok := components.Events.First(w)
	if !ok {
		return nil
	}
	events := components.Events.Get(entry)
	out := events.Pending
	events.Pending = nil
	return out
}

// PlayEvents drains the queue into sink and returns the drained events.
func PlayEvents(w donburi.World, sink AudioSink) []components.Event {
	evs := DrainEvents(w)
	if sink == nil {
		return evs
	}
	for _, ev := range evs {
		if ev.Sound != cfg.SoundNone {
			sink.Play(ev.Sound)
		}
	}
	return evs
}
