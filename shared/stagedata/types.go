// Package stagedata parses arena layouts from TMX files.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package stagedata

// Stage holds the arena geometry read from a TMX file.
type Stage struct {
	Name   string
	Width  float64
	Height float64

	// Range allowed for a combatant's left edge.
	MinX float64
	MaxX float64

	GroundY float64
	Homes   [2]float64 // left edge of P1 and P2 at round start

	Background string // image path relative to the assets root, may be empty
}
