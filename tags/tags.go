package tags

import "github.com/yohamta/donburi"

var (
	Combatant = donburi.NewTag().SetName("Combatant")
	Stage     = donburi.NewTag().SetName("Stage")
)

// Resolv tags for hurtbox queries
const (
	ResolvBody = "body"
	ResolvP1   = "P1"
	ResolvP2   = "P2"
)
