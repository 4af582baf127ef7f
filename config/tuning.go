package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrBadTuning = errors.New("bad tuning")

// Tuning is a partial override of the built-in balance values. Only the
// fields present in the file are changed.
type Tuning struct {
	Combat     *CombatTuning                   `yaml:"combat"`
	Camera     *CameraTuning                   `yaml:"camera"`
	Round      *RoundTuning                    `yaml:"round"`
	Stamina    *StaminaTuning                  `yaml:"stamina"`
	Characters map[CharacterID]CharacterTuning `yaml:"characters"`
}

type CombatTuning struct {
	HitKnockback        *float64 `yaml:"hit_knockback"`
	BlockKnockbackScale *float64 `yaml:"block_knockback_scale"`
	KnockbackDecay      *float64 `yaml:"knockback_decay"`
}

type CameraTuning struct {
	Decay     *float64 `yaml:"decay"`
	MaxOffset *float64 `yaml:"max_offset"`
}

type RoundTuning struct {
	StartingLives *int     `yaml:"starting_lives"`
	KOGrace       *float64 `yaml:"ko_grace"`
}

type StaminaTuning struct {
	Max    *int     `yaml:"max"`
	Period *float64 `yaml:"period"`
}

type ActionTuning struct {
	Damage     *int     `yaml:"damage"`
	Stamina    *int     `yaml:"stamina"`
	StartX     *float64 `yaml:"start_x"`
	EndX       *float64 `yaml:"end_x"`
	StartFrame *int     `yaml:"start_frame"`
	EndFrame   *int     `yaml:"end_frame"`
	HoldFrame  *int     `yaml:"hold_frame"`
}

type CharacterTuning struct {
	Name                *string       `yaml:"name"`
	WalkSpeed           *float64      `yaml:"walk_speed"`
	BlockDamageDivider  *int          `yaml:"block_damage_divider"`
	KnockbackMultiplier *float64      `yaml:"knockback_multiplier"`
	FrameDuration       *float64      `yaml:"frame_duration"`
	Punch               *ActionTuning `yaml:"punch"`
	Kick                *ActionTuning `yaml:"kick"`
	Block               *ActionTuning `yaml:"block"`
}

// LoadTuning reads a YAML tuning file. Unknown keys are rejected so typos
// don't silently do nothing.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: read %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("tuning: %s: %w", path, err)
	}
	return t, nil
}

func ParseTuning(data []byte) (*Tuning, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Tuning
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the overrides that can be judged on their own. Character
// frame windows are checked when the fighter is built.
func (t *Tuning) Validate() error {
	if c := t.Combat; c != nil {
		if isNegative(c.HitKnockback) {
			return fmt.Errorf("combat: negative knockback: %w", ErrBadTuning)
		}
		if c.KnockbackDecay != nil && *c.KnockbackDecay <= 0 {
			return fmt.Errorf("combat: knockback decay %v must be positive: %w", *c.KnockbackDecay, ErrBadTuning)
		}
		if c.BlockKnockbackScale != nil && (*c.BlockKnockbackScale < 0 || *c.BlockKnockbackScale > 1) {
			return fmt.Errorf("combat: block knockback scale %v outside [0, 1]: %w", *c.BlockKnockbackScale, ErrBadTuning)
		}
	}
	if c := t.Camera; c != nil {
		if c.Decay != nil && (*c.Decay <= 0 || *c.Decay > 1) {
			return fmt.Errorf("camera: decay %v outside (0, 1]: %w", *c.Decay, ErrBadTuning)
		}
		if isNegative(c.MaxOffset) {
			return fmt.Errorf("camera: negative max offset: %w", ErrBadTuning)
		}
	}
	if r := t.Round; r != nil {
		if r.StartingLives != nil && *r.StartingLives < 1 {
			return fmt.Errorf("round: starting lives %d: %w", *r.StartingLives, ErrBadTuning)
		}
		if isNegative(r.KOGrace) {
			return fmt.Errorf("round: negative ko grace: %w", ErrBadTuning)
		}
	}
	if s := t.Stamina; s != nil {
		if s.Max != nil && *s.Max < 0 {
			return fmt.Errorf("stamina: max %d: %w", *s.Max, ErrBadTuning)
		}
		if s.Period != nil && *s.Period <= 0 {
			return fmt.Errorf("stamina: period %v: %w", *s.Period, ErrBadTuning)
		}
	}
	for id, c := range t.Characters {
		if _, ok := Characters[id]; !ok {
			return fmt.Errorf("character %d not in roster: %w", id, ErrBadTuning)
		}
		if c.FrameDuration != nil && *c.FrameDuration <= 0 {
			return fmt.Errorf("character %d: frame duration %v: %w", id, *c.FrameDuration, ErrBadTuning)
		}
		if c.BlockDamageDivider != nil && *c.BlockDamageDivider <= 0 {
			return fmt.Errorf("character %d: block damage divider %d: %w", id, *c.BlockDamageDivider, ErrBadTuning)
		}
	}
	return nil
}

// Apply writes the overrides into the package-level configuration.
func (t *Tuning) Apply() {
	if c := t.Combat; c != nil {
		set(&Combat.HitKnockback, c.HitKnockback)
		set(&Combat.BlockKnockbackScale, c.BlockKnockbackScale)
		set(&Combat.KnockbackDecay, c.KnockbackDecay)
	}
	if c := t.Camera; c != nil {
		set(&Camera.Decay, c.Decay)
		set(&Camera.MaxOffset, c.MaxOffset)
	}
	if r := t.Round; r != nil {
		set(&Round.StartingLives, r.StartingLives)
		set(&Round.KOGrace, r.KOGrace)
	}
	if s := t.Stamina; s != nil {
		set(&Combatant.MaxStamina, s.Max)
		set(&Combatant.StaminaPeriod, s.Period)
	}
	for id, ct := range t.Characters {
		char := Characters[id]
		set(&char.Name, ct.Name)
		set(&char.WalkSpeed, ct.WalkSpeed)
		set(&char.BlockDamageDivider, ct.BlockDamageDivider)
		set(&char.KnockbackMultiplier, ct.KnockbackMultiplier)
		set(&char.FrameDuration, ct.FrameDuration)
		ct.Punch.applyTo(&char.Actions[ActionPunch])
		ct.Kick.applyTo(&char.Actions[ActionKick])
		ct.Block.applyTo(&char.Actions[ActionBlock])
		Characters[id] = char
	}
}

func (a *ActionTuning) applyTo(p *ActionConfig) {
	if a == nil {
		return
	}
	set(&p.Damage, a.Damage)
	set(&p.Stamina, a.Stamina)
	set(&p.StartX, a.StartX)
	set(&p.EndX, a.EndX)
	set(&p.StartFrame, a.StartFrame)
	set(&p.EndFrame, a.EndFrame)
	set(&p.HoldFrame, a.HoldFrame)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func isNegative(v *float64) bool {
	return v != nil && *v < 0
}
