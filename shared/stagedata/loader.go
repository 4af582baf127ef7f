package stagedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and object names understood by the loader.
const (
	GroupName  = "Stage"
	BoundsName = "Bounds"
	HomeP1Name = "HomeP1"
	HomeP2Name = "HomeP2"
	BgProperty = "background"
)

var ErrMissingObject = errors.New("stage object missing")

// Load parses a TMX file. bodyWidth is the combatant width, used to turn the
// Bounds rectangle into a range for the body's left edge.
func Load(fsys fs.FS, tmxPath string, bodyWidth float64) (*Stage, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	st := &Stage{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	var bounds, home1, home2 *tiled.Object
	for _, og := range m.ObjectGroups {
		if og.Name != GroupName {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case BoundsName:
				bounds = o
			case HomeP1Name:
				home1 = o
			case HomeP2Name:
				home2 = o
			}
		}
	}

	for name, o := range map[string]*tiled.Object{BoundsName: bounds, HomeP1Name: home1, HomeP2Name: home2} {
		if o == nil {
			return nil, fmt.Errorf("%s: %q: %w", tmxPath, name, ErrMissingObject)
		}
	}

	st.MinX = bounds.X
	st.MaxX = bounds.X + bounds.Width - bodyWidth
	if st.MaxX < st.MinX {
		return nil, fmt.Errorf("%s: bounds narrower than a body (%v < %v)", tmxPath, bounds.Width, bodyWidth)
	}
	st.Background = bounds.Properties.GetString(BgProperty)

	st.Homes = [2]float64{home1.X, home2.X}
	st.GroundY = home1.Y

	return st, nil
}
