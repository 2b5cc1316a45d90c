package life

import "uk.ac.bris.cs/leepath/grid"

// BitBoard stores which cells are walls using individual bits instead of bytes.
// Border cells are never set, so they read as dead.
type BitBoard struct {
	RowLength int
	NumRows   int
	Bytes     []byte
}

// WallBoard snapshots the interior walls of g.
func WallBoard(g *grid.Grid) *BitBoard {
	b := &BitBoard{
		RowLength: g.Width(),
		NumRows:   g.Height(),
		Bytes:     make([]byte, (g.Width()*g.Height()+7)/8),
	}
	g.EachInterior(func(p grid.Position, t grid.Tile) {
		if t.Kind == grid.Blocked {
			b.set(p.Y, p.X)
		}
	})
	return b
}

func (b *BitBoard) set(row, col int) {
	bit := uint(row*b.RowLength + col)
	b.Bytes[bit>>3] |= 1 << (bit & 7)
}

// Get returns a cell as if the array was a 2d slice. Cells off the board are dead.
func (b *BitBoard) Get(row, col int) bool {
	if row < 0 || row >= b.NumRows || col < 0 || col >= b.RowLength {
		return false
	}
	bit := uint(row*b.RowLength + col)
	// Perform bitwise operations to get the byte and bit indices
	return b.Bytes[bit>>3]&(1<<(bit&7)) > 0
}

// Count returns the number of live cells.
func (b *BitBoard) Count() int {
	n := 0
	for _, v := range b.Bytes {
		for ; v != 0; v &= v - 1 {
			n++
		}
	}
	return n
}
