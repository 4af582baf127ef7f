package input

import (
	"slices"

	"github.com/automoto/pocalucha/components"
	cfg "github.com/automoto/pocalucha/config"
	"github.com/automoto/pocalucha/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps each slot's actions to keyboard keys. Both players share one
// keyboard.
var Bindings = [cfg.PlayerSlotCount][cfg.InputActionCount]ebiten.Key{
	cfg.PlayerOne: {
		cfg.InputLeft:  ebiten.KeyA,
		cfg.InputRight: ebiten.KeyD,
		cfg.InputPunch: ebiten.KeyW,
		cfg.InputKick:  ebiten.KeyE,
		cfg.InputBlock: ebiten.KeyQ,
	},
	cfg.PlayerTwo: {
		cfg.InputLeft:  ebiten.KeyJ,
		cfg.InputRight: ebiten.KeyL,
		cfg.InputPunch: ebiten.KeyI,
		cfg.InputKick:  ebiten.KeyO,
		cfg.InputBlock: ebiten.KeyU,
	},
}

var (
	confirmKeys    = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace, ebiten.KeyEscape}
	debugToggleKey = ebiten.KeyF1
	muteToggleKey  = ebiten.KeyM
	keyBuffer      []ebiten.Key
	releasedBuffer []ebiten.Key
)

// UpdateKeyboard forwards this frame's key presses and releases to the
// combatants. Must run before the simulation step.
func UpdateKeyboard(ecs *ecs.ECS) {
	keyBuffer = inpututil.AppendJustPressedKeys(keyBuffer[:0])
	releasedBuffer = inpututil.AppendJustReleasedKeys(releasedBuffer[:0])
	if len(keyBuffer) == 0 && len(releasedBuffer) == 0 {
		return
	}

	for _, e := range systems.Combatants(ecs.World) {
		dispatch(e, keyBuffer, true)
		dispatch(e, releasedBuffer, false)
	}
}

func dispatch(e *donburi.Entry, keys []ebiten.Key, pressed bool) {
	slot := components.Combatant.Get(e).Slot
	for action, key := range Bindings[slot] {
		if slices.Contains(keys, key) {
			systems.HandleInput(e, cfg.InputAction(action), pressed)
		}
	}
}

// ConfirmPressed reports whether any menu confirm key went down this frame.
func ConfirmPressed() bool {
	for _, key := range confirmKeys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// UpdateToggles flips the debug overlay and mute settings.
func UpdateToggles(ecs *ecs.ECS) {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	if inpututil.IsKeyJustPressed(debugToggleKey) {
		settings.ShowHitboxes = !settings.ShowHitboxes
	}
	if inpututil.IsKeyJustPressed(muteToggleKey) {
		settings.Muted = !settings.Muted
	}
}
