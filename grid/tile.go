package grid

import "strconv"

// Kind is the tag of a Tile.
type Kind uint8

// This is a way of creating enums in Go.
const (
	Empty Kind = iota
	Blocked
	Start
	End
	PathMarker
	Distance
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Blocked:
		return "Blocked"
	case Start:
		return "Start"
	case End:
		return "End"
	case PathMarker:
		return "PathMarker"
	case Distance:
		return "Distance"
	default:
		return "Incorrect Kind"
	}
}

// Tile is the semantic state of one cell.
// Dist is only meaningful when Kind is Distance, and is always >= 1 there.
type Tile struct {
	Kind Kind
	Dist uint32
}

// Convenience values for the tags that carry no payload.
var (
	EmptyTile   = Tile{Kind: Empty}
	BlockedTile = Tile{Kind: Blocked}
	StartTile   = Tile{Kind: Start}
	EndTile     = Tile{Kind: End}
	MarkerTile  = Tile{Kind: PathMarker}
)

// DistanceTile returns a Distance(n) tile.
func DistanceTile(n uint32) Tile {
	return Tile{Kind: Distance, Dist: n}
}

// IsTransient reports whether the tile belongs to the last pathfinding run.
func (t Tile) IsTransient() bool {
	return t.Kind == Distance || t.Kind == PathMarker
}

// IsSpecial reports whether the tile is Start or End.
func (t Tile) IsSpecial() bool {
	return t.Kind == Start || t.Kind == End
}

// Walkable reports whether a flood fill may label this tile.
func (t Tile) Walkable() bool {
	return t.Kind == Empty
}

func (t Tile) String() string {
	if t.Kind == Distance {
		return "Distance(" + strconv.FormatUint(uint64(t.Dist), 10) + ")"
	}
	return t.Kind.String()
}
