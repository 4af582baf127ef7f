package config

// StateID identifies a combatant state. It doubles as the key of the
// animation clip played while in that state.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota - 1
	Walk
	Punch
	Kick
	Block
	Hit
	Dead

	StateCount // Must be last - used for array sizing
)

// StateToFileName maps StateID to the directory holding its frames.
var StateToFileName = [StateCount]string{
	Idle:  "idle",
	Walk:  "walk",
	Punch: "punch",
	Kick:  "kick",
	Block: "block",
	Hit:   "hit",
	Dead:  "death",
}

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Punch:
		return "punch"
	case Kick:
		return "kick"
	case Block:
		return "block"
	case Hit:
		return "hit"
	case Dead:
		return "dead"
	}
	return "none"
}

// Action returns the combat action performed in this state, if any.
func (s StateID) Action() (ActionID, bool) {
	switch s {
	case Punch:
		return ActionPunch, true
	case Kick:
		return ActionKick, true
	case Block:
		return ActionBlock, true
	}
	return 0, false
}

// IsAttack reports whether the state can carry a hitbox.
func (s StateID) IsAttack() bool {
	return s == Punch || s == Kick
}

// RoundStateID represents the phase of the current round.
type RoundStateID int

const (
	RoundStateFighting  RoundStateID = iota // Both combatants alive
	RoundStateKO                            // Someone is down, waiting out the grace period
	RoundStateMatchOver                     // A player ran out of lives
)

func (r RoundStateID) String() string {
	switch r {
	case RoundStateFighting:
		return "fighting"
	case RoundStateKO:
		return "ko"
	case RoundStateMatchOver:
		return "match over"
	}
	return "unknown"
}
