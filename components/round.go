package components

import (
	cfg "github.com/automoto/pocalucha/config"
	"github.com/yohamta/donburi"
)

// Draw is stored in RoundData.Winner when both players run out of lives in
// the same round.
const Draw cfg.PlayerSlot = -1

// RoundData stores the round and match state.
// This is a singleton component - only one match exists at a time.
type RoundData struct {
	Number int
	Active bool
	State  cfg.RoundStateID
	Winner cfg.PlayerSlot // valid once State is RoundStateMatchOver
}

var Round = donburi.NewComponentType[RoundData]()
