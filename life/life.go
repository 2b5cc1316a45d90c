// Package life runs Conway's Game of Life over the walls of a grid.Grid.
//
// Walls are live cells. Only interior cells take part: border walls are
// neither counted nor changed, and Start and End count as dead and never
// change. Distance and PathMarker tiles count as dead and can be born into
// walls.
package life

import (
	"math/rand"

	"uk.ac.bris.cs/leepath/grid"
)

// Generation summarises one step.
type Generation struct {
	Born  int
	Died  int
	Walls int
}

// fragment stores the next state of a band of rows.
// endRow is exclusive.
type fragment struct {
	startRow int
	endRow   int
	cells    [][]bool
}

// Step advances the walls by one generation. The next state is computed from
// a snapshot, split into row bands across threads, and written back once all
// bands are in.
func Step(g *grid.Grid, threads int) Generation {
	board := WallBoard(g)
	interior := g.Height() - 2
	if threads < 1 {
		threads = 1
	}
	if threads > interior {
		threads = interior
	}

	fragments := make(chan fragment, threads)
	fragHeight := interior / threads
	for thread := 0; thread < threads; thread++ {
		start := 1 + thread*fragHeight
		end := start + fragHeight
		// Give any remaining rows to the last worker
		if thread == threads-1 {
			end = g.Height() - 1
		}
		go stepRows(board, start, end, fragments)
	}

	// Wait for every band before touching the grid
	bands := make([]fragment, 0, threads)
	for thread := 0; thread < threads; thread++ {
		bands = append(bands, <-fragments)
	}

	var gen Generation
	for _, frag := range bands {
		for row := frag.startRow; row < frag.endRow; row++ {
			for col := 1; col < board.RowLength-1; col++ {
				p := grid.Position{X: col, Y: row}
				alive := board.Get(row, col)
				next := frag.cells[row-frag.startRow][col]
				if alive == next || g.At(p).IsSpecial() {
					continue
				}
				if _, err := g.SetWall(p, next); err != nil {
					continue
				}
				if next {
					gen.Born++
				} else {
					gen.Died++
				}
			}
		}
	}
	gen.Walls = board.Count() + gen.Born - gen.Died
	return gen
}

func stepRows(board *BitBoard, startRow, endRow int, fragments chan<- fragment) {
	frag := fragment{
		startRow: startRow,
		endRow:   endRow,
		cells:    make([][]bool, endRow-startRow),
	}
	for row := startRow; row < endRow; row++ {
		cells := make([]bool, board.RowLength)
		for col := 1; col < board.RowLength-1; col++ {
			cells[col] = nextCellState(col, row, board)
		}
		frag.cells[row-startRow] = cells
	}
	fragments <- frag
}

/*
any live cell with fewer than two live neighbours dies
any live cell with two or three live neighbours is unaffected
any live cell with more than three live neighbours dies
any dead cell with exactly three live neighbours becomes alive
*/
func nextCellState(x, y int, board *BitBoard) bool {
	adj := countLiveNeighbours(x, y, board)
	if board.Get(y, x) {
		return adj == 2 || adj == 3
	}
	return adj == 3
}

// No wrapping: the border is dead space.
func countLiveNeighbours(x, y int, board *BitBoard) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if board.Get(y+dy, x+dx) {
				n++
			}
		}
	}
	return n
}

// Seed turns each Empty interior cell into a wall with the given probability
// and returns how many walls were placed.
func Seed(g *grid.Grid, rng *rand.Rand, density float64) int {
	placed := 0
	g.EachInterior(func(p grid.Position, t grid.Tile) {
		if t.Kind != grid.Empty || rng.Float64() >= density {
			return
		}
		if changed, err := g.SetWall(p, true); err == nil && changed {
			placed++
		}
	})
	return placed
}
