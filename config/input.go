package config

// InputAction represents a logical fighter input.
type InputAction int

const (
	InputLeft InputAction = iota
	InputRight
	InputPunch
	InputKick
	InputBlock
	InputActionCount // Must be last - used for array sizing
)

func (a InputAction) String() string {
	switch a {
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputPunch:
		return "punch"
	case InputKick:
		return "kick"
	case InputBlock:
		return "block"
	}
	return "unknown"
}

// PlayerSlot identifies which side of the screen a combatant plays on.
type PlayerSlot int

const (
	PlayerOne PlayerSlot = iota
	PlayerTwo
	PlayerSlotCount
)

// Opponent returns the other slot.
func (p PlayerSlot) Opponent() PlayerSlot {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p PlayerSlot) String() string {
	if p == PlayerTwo {
		return "P2"
	}
	return "P1"
}
