package viz

import (
	"image/color"

	"uk.ac.bris.cs/leepath/grid"
)

var (
	WallColor    = color.RGBA{R: 56, G: 56, B: 56, A: 255}
	StartColor   = color.RGBA{G: 255, A: 255}
	EndColor     = color.RGBA{R: 255, A: 255}
	EmptyColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PathColor    = color.RGBA{R: 255, B: 255, A: 255}
	OutlineColor = color.RGBA{A: 255}
)

// TileColor returns the fill for a tile. Distance tiles shade blue with the
// distance when showDistances is set and look empty otherwise.
func TileColor(t grid.Tile, showDistances bool) color.RGBA {
	switch t.Kind {
	case grid.Blocked:
		return WallColor
	case grid.Start:
		return StartColor
	case grid.End:
		return EndColor
	case grid.PathMarker:
		return PathColor
	case grid.Distance:
		if showDistances {
			return color.RGBA{B: uint8(t.Dist * 10 % 256), A: 255}
		}
	}
	return EmptyColor
}

// Outlined reports whether a tile is drawn as an empty cell with a black outline.
func Outlined(t grid.Tile, showDistances bool) bool {
	return t.Kind == grid.Empty || (t.Kind == grid.Distance && !showDistances)
}
