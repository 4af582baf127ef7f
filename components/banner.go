package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the large centred message shown on round changes and KOs
// (singleton).
type BannerData struct {
	Text      string
	Scale     float32 // pops in from above 1
	Tween     *gween.Tween
	Remaining float64 // seconds left on screen, hidden at 0
}

var Banner = donburi.NewComponentType[BannerData]()
