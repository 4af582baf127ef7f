package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData is the body of a combatant. Position is the top-left corner.
type PhysicsData struct {
	Position math.Vec2
	Velocity math.Vec2
	Width    float64
	Height   float64
}

// Body returns the current body rectangle.
func (p *PhysicsData) Body() Rect {
	return Rect{X: p.Position.X, Y: p.Position.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal centre of the body.
func (p *PhysicsData) CenterX() float64 {
	return p.Position.X + p.Width/2
}

var Physics = donburi.NewComponentType[PhysicsData]()
