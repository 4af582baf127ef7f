package config

// CharacterID selects a fighter from the roster.
type CharacterID int

// ActionID indexes the per-character combat action parameters.
type ActionID int

const (
	ActionPunch ActionID = iota
	ActionKick
	ActionBlock
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionPunch:
		return "punch"
	case ActionKick:
		return "kick"
	case ActionBlock:
		return "block"
	}
	return "unknown"
}

// State returns the combatant state that performs the action.
func (a ActionID) State() StateID {
	switch a {
	case ActionPunch:
		return Punch
	case ActionKick:
		return Kick
	case ActionBlock:
		return Block
	}
	return StateNone
}

// ActionConfig holds the tuning of one punch, kick or block.
type ActionConfig struct {
	Damage  int // Unused for block
	Stamina int // Cost deducted when the action starts

	// Attack reach as fractions of half the body width, measured forward
	// from the body centre.
	StartX float64
	EndX   float64

	// Active window [StartFrame, EndFrame): hitbox for attacks, guard for block.
	StartFrame int
	EndFrame   int

	// Block only: frame the animation is pinned to while the input is held.
	HoldFrame int
}

// ClipDef describes where a state's frames live in the asset store.
type ClipDef struct {
	Template string // fmt template with a single integer verb, e.g. "chr/0/idle/%04d.png"
	From     int    // index of the first frame file
	Count    int
}

// CharacterConfig contains everything needed to build and run one fighter.
type CharacterConfig struct {
	Name                string
	WalkSpeed           float64 // pixels per second
	Actions             [ActionCount]ActionConfig
	BlockDamageDivider  int
	KnockbackMultiplier float64
	FrameDuration       float64 // seconds each frame stays on screen
	Clips               [StateCount]ClipDef
}

// Action returns the parameters of the given action.
func (c *CharacterConfig) Action(a ActionID) ActionConfig {
	return c.Actions[a]
}

// Characters is the fighter roster keyed by id.
var Characters map[CharacterID]CharacterConfig

// clip points at the frames drawn for state. A state may borrow another
// state's frames.
func clip(id string, state StateID, from, count int) ClipDef {
	return ClipDef{
		Template: "chr/" + id + "/" + StateToFileName[state] + "/%04d.png",
		From:     from,
		Count:    count,
	}
}

func defaultActions() [ActionCount]ActionConfig {
	return [ActionCount]ActionConfig{
		ActionPunch: {
			Damage:     7,
			Stamina:    4,
			StartX:     0.5,
			EndX:       1.3,
			StartFrame: 10,
			EndFrame:   15,
		},
		ActionKick: {
			Damage:     10,
			Stamina:    6,
			StartX:     0.5,
			EndX:       1.5,
			StartFrame: 8,
			EndFrame:   18,
		},
		ActionBlock: {
			Stamina:    2,
			StartFrame: 3,
			HoldFrame:  6,
			EndFrame:   9,
		},
	}
}

func init() {
	Characters = map[CharacterID]CharacterConfig{
		0: {
			Name:                "Pancho",
			WalkSpeed:           140.0,
			Actions:             defaultActions(),
			BlockDamageDivider:  3,
			KnockbackMultiplier: 1.0,
			FrameDuration:       DefaultFrameDuration,
			Clips: [StateCount]ClipDef{
				Idle:  clip("0", Idle, 1, 23),
				Walk:  clip("0", Walk, 1, 23),
				Punch: clip("0", Punch, 1, 30),
				Kick:  clip("0", Kick, 1, 25),
				Block: clip("0", Block, 0, 13),
				Hit:   clip("0", Hit, 0, 18),
				Dead:  clip("0", Dead, 0, 36),
			},
		},
		1: {
			Name:                "Lupita",
			WalkSpeed:           140.0,
			Actions:             defaultActions(),
			BlockDamageDivider:  3,
			KnockbackMultiplier: 1.0,
			FrameDuration:       DefaultFrameDuration,
			Clips: [StateCount]ClipDef{
				Idle:  clip("1", Idle, 0, 13),
				Walk:  clip("1", Walk, 0, 18),
				Punch: clip("1", Punch, 0, 33),
				Kick:  clip("1", Kick, 0, 24),
				// No block frames drawn yet, the hit frames stand in.
				Block: clip("1", Hit, 0, 13),
				Hit:   clip("1", Hit, 0, 13),
				Dead:  clip("1", Dead, 0, 36),
			},
		},
	}
}
