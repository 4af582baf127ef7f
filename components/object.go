package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the hurtbox registered in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData wraps the resolv space all hurtboxes live in.
type SpaceData struct {
	*resolv.Space
	// Added to world x before storing in the space, which cannot hold
	// negative coordinates.
	OffsetX float64
}

var Space = donburi.NewComponentType[SpaceData]()
