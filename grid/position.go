package grid

import "fmt"

// Position is a cell coordinate. X grows right, Y grows down.
type Position struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Directions are the 4-connected neighbour offsets in expansion order: +x, -x, +y, -y.
// The order decides tie-breaks between equally short paths.
var Directions = [4]Position{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}
