package components

import (
	cfg "github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

type EventKind int

const (
	EventAttack EventKind = iota
	EventHit
	EventBlock
	EventKO
	EventRoundReset
	EventMatchOver
)

func (k EventKind) String() string {
	switch k {
	case EventAttack:
		return "attack"
	case EventHit:
		return "hit"
	case EventBlock:
		return "block"
	case EventKO:
		return "ko"
	case EventRoundReset:
		return "round reset"
	case EventMatchOver:
		return "match over"
	}
	return "unknown"
}

// Event is something that happened during a tick that the presentation
// layer may want to react to.
type Event struct {
	Kind  EventKind
	Slot  cfg.PlayerSlot // the combatant it happened to
	State cfg.StateID    // attack state for EventAttack
	Sound cfg.SoundID
}

// EventsData queues events until the scene drains them (singleton).
type EventsData struct {
	Pending []Event
}

var Events = donburi.NewComponentType[EventsData]()
