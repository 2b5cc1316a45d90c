// Package grid holds the shared tile board: a fixed W×H array of tiles whose
// one-cell border is permanently Blocked, with exactly one Start and one End.
//
// The board is mutated in place by the input handling, the automaton and the
// pathfinder. None of the methods lock; the owner of the host loop is the
// only mutator.
package grid

import "fmt"

// Grid is a row-major board of tiles.
type Grid struct {
	width, height int
	cells         []Tile
	start, end    Position
}

// New allocates a bordered grid with Start and End placed on interior cells.
func New(width, height int, start, end Position) (*Grid, error) {
	if width < 3 || height < 3 {
		return nil, ErrTooSmall
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
	for _, p := range []Position{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("placing %v: %w", p, ErrOutOfBounds)
		}
		if !g.Interior(p) {
			return nil, fmt.Errorf("placing %v: %w", p, ErrBorder)
		}
	}
	if start == end {
		return nil, ErrSamePosition
	}

	// Top and bottom rows
	for x := 0; x < width; x++ {
		g.cells[g.index(Position{x, 0})] = BlockedTile
		g.cells[g.index(Position{x, height - 1})] = BlockedTile
	}
	// Left and right columns
	for y := 0; y < height; y++ {
		g.cells[g.index(Position{0, y})] = BlockedTile
		g.cells[g.index(Position{width - 1, y})] = BlockedTile
	}

	g.start, g.end = start, end
	g.cells[g.index(start)] = StartTile
	g.cells[g.index(end)] = EndTile
	return g, nil
}

// Width returns the number of columns, border included.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows, border included.
func (g *Grid) Height() int { return g.height }

// Start returns the position of the Start tile.
func (g *Grid) Start() Position { return g.start }

// End returns the position of the End tile.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Interior reports whether p lies on the grid and off the border.
func (g *Grid) Interior(p Position) bool {
	return p.X >= 1 && p.X < g.width-1 && p.Y >= 1 && p.Y < g.height-1
}

func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

// Get returns the tile at p.
func (g *Grid) Get(p Position) (Tile, error) {
	if !g.InBounds(p) {
		return Tile{}, fmt.Errorf("get %v: %w", p, ErrOutOfBounds)
	}
	return g.cells[g.index(p)], nil
}

// At returns the tile at p, treating anything off the grid as Blocked.
func (g *Grid) At(p Position) Tile {
	if !g.InBounds(p) {
		return BlockedTile
	}
	return g.cells[g.index(p)]
}

// Set writes t at p. Border cells, Start and End cannot be written this way;
// use MoveStart and MoveEnd to relocate the special tiles. Distance(0) is refused.
func (g *Grid) Set(p Position, t Tile) error {
	if !g.InBounds(p) {
		return fmt.Errorf("set %v: %w", p, ErrOutOfBounds)
	}
	if !g.Interior(p) {
		return fmt.Errorf("set %v: %w", p, ErrBorder)
	}
	if t.IsSpecial() || g.cells[g.index(p)].IsSpecial() {
		return fmt.Errorf("set %v: %w", p, ErrSpecialTile)
	}
	if t.Kind == Distance && t.Dist == 0 {
		return fmt.Errorf("set %v: %w", p, ErrZeroDistance)
	}
	g.cells[g.index(p)] = t
	return nil
}

// SetWall paints (wall=true) or erases a wall at p. Start and End are left
// untouched. It reports whether the tile changed.
func (g *Grid) SetWall(p Position, wall bool) (bool, error) {
	if !g.InBounds(p) {
		return false, fmt.Errorf("wall %v: %w", p, ErrOutOfBounds)
	}
	if !g.Interior(p) {
		return false, fmt.Errorf("wall %v: %w", p, ErrBorder)
	}
	i := g.index(p)
	cur := g.cells[i]
	if cur.IsSpecial() {
		return false, nil
	}
	next := EmptyTile
	if wall {
		next = BlockedTile
	}
	if cur == next {
		return false, nil
	}
	g.cells[i] = next
	return true, nil
}

// MoveStart relocates the Start tile to p.
func (g *Grid) MoveStart(p Position) error {
	return g.moveSpecial(&g.start, StartTile, p)
}

// MoveEnd relocates the End tile to p.
func (g *Grid) MoveEnd(p Position) error {
	return g.moveSpecial(&g.end, EndTile, p)
}

func (g *Grid) moveSpecial(pos *Position, t Tile, p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("move %v to %v: %w", t.Kind, p, ErrOutOfBounds)
	}
	if !g.Interior(p) {
		return fmt.Errorf("move %v to %v: %w", t.Kind, p, ErrBorder)
	}
	if *pos == p {
		return nil
	}
	dst := g.cells[g.index(p)]
	if dst.Kind != Empty && !dst.IsTransient() {
		return fmt.Errorf("move %v to %v (%v): %w", t.Kind, p, dst, ErrOccupied)
	}
	g.cells[g.index(*pos)] = EmptyTile
	g.cells[g.index(p)] = t
	*pos = p
	return nil
}

// ClearWalls turns every interior wall into Empty and returns how many were removed.
func (g *Grid) ClearWalls() int {
	removed := 0
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			i := g.index(Position{x, y})
			if g.cells[i].Kind == Blocked {
				g.cells[i] = EmptyTile
				removed++
			}
		}
	}
	return removed
}

// ResetTransient clears every Distance and PathMarker tile back to Empty,
// returning the number of tiles cleared.
func (g *Grid) ResetTransient() int {
	cleared := 0
	for i, t := range g.cells {
		if t.IsTransient() {
			g.cells[i] = EmptyTile
			cleared++
		}
	}
	return cleared
}

// HasTransient reports whether any Distance or PathMarker tile remains.
func (g *Grid) HasTransient() bool {
	for _, t := range g.cells {
		if t.IsTransient() {
			return true
		}
	}
	return false
}

// Walls counts interior Blocked tiles.
func (g *Grid) Walls() int {
	n := 0
	g.EachInterior(func(_ Position, t Tile) {
		if t.Kind == Blocked {
			n++
		}
	})
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Position, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Position{x, y}, g.cells[y*g.width+x])
		}
	}
}

// EachInterior calls fn for every non-border cell in row-major order.
func (g *Grid) EachInterior(fn func(p Position, t Tile)) {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			fn(Position{x, y}, g.cells[y*g.width+x])
		}
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]Tile, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

// String renders the grid one row per line:
// '#' wall, 'S' start, 'E' end, '*' path, '.' empty, 'o' distance.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf = append(buf, glyph(g.cells[y*g.width+x]))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func glyph(t Tile) byte {
	switch t.Kind {
	case Blocked:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	case PathMarker:
		return '*'
	case Distance:
		return 'o'
	default:
		return '.'
	}
}
