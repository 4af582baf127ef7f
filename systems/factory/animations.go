package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/pocalucha/assets/animations"
	cfg "github.com/automoto/pocalucha/config"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrMissingFrames    = errors.New("missing animation frames")
	ErrInvalidCharacter = errors.New("invalid character configuration")
)

// FrameProvider hands out frame handles for a path template. Frame i of the
// result is the file at fmt.Sprintf(template, from+i).
type FrameProvider interface {
	Frames(template string, from, count int) ([]animations.Frame, error)
}

// LoadCharacter checks a roster entry and builds its animator.
func LoadCharacter(id cfg.CharacterID, provider FrameProvider) (*animations.Animator, error) {
	char, ok := cfg.Characters[id]
	if !ok {
		return nil, fmt.Errorf("character %d: %w", id, ErrUnknownCharacter)
	}
	if err := validateCharacter(id, char); err != nil {
		return nil, err
	}
	return GenerateAnimations(id, char, provider)
}

// GenerateAnimations loads one clip per state for a character and wraps them
// in an animator positioned on the idle clip.
func GenerateAnimations(id cfg.CharacterID, char cfg.CharacterConfig, provider FrameProvider) (*animations.Animator, error) {
	clips := make(map[cfg.StateID]*animations.Clip, cfg.StateCount)
	for state := cfg.Idle; state < cfg.StateCount; state++ {
		def := char.Clips[state]
		if def.Count <= 0 {
			return nil, fmt.Errorf("character %d %s: no frames configured: %w", id, state, ErrMissingFrames)
		}
		frames, err := provider.Frames(def.Template, def.From, def.Count)
		if err != nil {
			return nil, fmt.Errorf("character %d %s: %w: %w", id, state, ErrMissingFrames, err)
		}
		if len(frames) < def.Count {
			return nil, fmt.Errorf("character %d %s: got %d of %d frames: %w", id, state, len(frames), def.Count, ErrMissingFrames)
		}
		clip, err := animations.NewClip(state.String(), frames[:def.Count], char.FrameDuration)
		if err != nil {
			return nil, fmt.Errorf("character %d %s: %w", id, state, err)
		}
		clips[state] = clip
	}
	return animations.NewAnimator(clips, cfg.Idle)
}

// validateCharacter rejects parameters the state machine cannot run with.
func validateCharacter(id cfg.CharacterID, char cfg.CharacterConfig) error {
	if char.FrameDuration <= 0 {
		return fmt.Errorf("character %d: frame duration %v: %w", id, char.FrameDuration, ErrInvalidCharacter)
	}
	if char.BlockDamageDivider <= 0 {
		return fmt.Errorf("character %d: block damage divider %d: %w", id, char.BlockDamageDivider, ErrInvalidCharacter)
	}
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		p := char.Actions[a]
		clipLen := char.Clips[a.State()].Count
		switch {
		case p.Damage < 0 || p.Stamina < 0:
			return fmt.Errorf("character %d %s: negative damage or stamina: %w", id, a, ErrInvalidCharacter)
		case p.StartFrame < 0 || p.EndFrame < p.StartFrame:
			return fmt.Errorf("character %d %s: active window [%d, %d): %w", id, a, p.StartFrame, p.EndFrame, ErrInvalidCharacter)
		case p.StartFrame >= clipLen:
			return fmt.Errorf("character %d %s: active window starts past the %d frame clip: %w", id, a, clipLen, ErrInvalidCharacter)
		case a == cfg.ActionBlock && (p.HoldFrame < 0 || p.HoldFrame >= clipLen):
			return fmt.Errorf("character %d block: hold frame %d: %w", id, p.HoldFrame, ErrInvalidCharacter)
		case a != cfg.ActionBlock && p.EndX < p.StartX:
			return fmt.Errorf("character %d %s: reach %v..%v: %w", id, a, p.StartX, p.EndX, ErrInvalidCharacter)
		}
	}
	return nil
}
