package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uk.ac.bris.cs/leepath/grid"
)

func newGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(5, 5, grid.Position{X: 1, Y: 1}, grid.Position{X: 3, Y: 3})
	require.NoError(t, err)
	return g
}

// TestNew_Errors verifies that New rejects grids without a usable interior.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		w, h       int
		start, end grid.Position
		err        error
	}{
		{"TooNarrow", 2, 5, grid.Position{X: 1, Y: 1}, grid.Position{X: 1, Y: 2}, grid.ErrTooSmall},
		{"StartOutside", 5, 5, grid.Position{X: 9, Y: 1}, grid.Position{X: 3, Y: 3}, grid.ErrOutOfBounds},
		{"EndOnBorder", 5, 5, grid.Position{X: 1, Y: 1}, grid.Position{X: 4, Y: 3}, grid.ErrBorder},
		{"SameCell", 5, 5, grid.Position{X: 2, Y: 2}, grid.Position{X: 2, Y: 2}, grid.ErrSamePosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h, tc.start, tc.end)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%v,%v) error = %v; want %v", tc.w, tc.h, tc.start, tc.end, err, tc.err)
			}
		})
	}
}

func TestNew_BorderAndSpecials(t *testing.T) {
	g := newGrid(t)
	g.Each(func(p grid.Position, tile grid.Tile) {
		switch {
		case !g.Interior(p):
			assert.Equal(t, grid.Blocked, tile.Kind, "border %v", p)
		case p == g.Start():
			assert.Equal(t, grid.StartTile, tile)
		case p == g.End():
			assert.Equal(t, grid.EndTile, tile)
		default:
			assert.Equal(t, grid.EmptyTile, tile, "interior %v", p)
		}
	})
	assert.Equal(t, 0, g.Walls())
}

func TestGetSet(t *testing.T) {
	g := newGrid(t)

	_, err := g.Get(grid.Position{X: -1, Y: 0})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	require.ErrorIs(t, g.Set(grid.Position{X: 0, Y: 2}, grid.EmptyTile), grid.ErrBorder)
	require.ErrorIs(t, g.Set(grid.Position{X: 2, Y: 2}, grid.StartTile), grid.ErrSpecialTile)
	require.ErrorIs(t, g.Set(g.End(), grid.EmptyTile), grid.ErrSpecialTile)
	require.ErrorIs(t, g.Set(grid.Position{X: 2, Y: 2}, grid.DistanceTile(0)), grid.ErrZeroDistance)
	assert.Equal(t, grid.EmptyTile, g.At(grid.Position{X: 2, Y: 2}))

	p := grid.Position{X: 2, Y: 2}
	require.NoError(t, g.Set(p, grid.DistanceTile(7)))
	tile, err := g.Get(p)
	require.NoError(t, err)
	assert.Equal(t, grid.DistanceTile(7), tile)
	assert.Equal(t, "Distance(7)", tile.String())

	assert.Equal(t, grid.BlockedTile, g.At(grid.Position{X: 10, Y: 10}))
}

func TestSetWall(t *testing.T) {
	g := newGrid(t)
	p := grid.Position{X: 2, Y: 1}

	changed, err := g.SetWall(p, true)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, grid.Blocked, g.At(p).Kind)

	changed, err = g.SetWall(p, true)
	require.NoError(t, err)
	assert.False(t, changed, "painting a wall twice is a no-op")

	changed, err = g.SetWall(g.Start(), true)
	require.NoError(t, err)
	assert.False(t, changed, "special tiles ignore painting")
	assert.Equal(t, grid.StartTile, g.At(g.Start()))

	_, err = g.SetWall(grid.Position{X: 0, Y: 0}, false)
	require.ErrorIs(t, err, grid.ErrBorder)

	changed, err = g.SetWall(p, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, grid.EmptyTile, g.At(p))
}

func TestMoveSpecial(t *testing.T) {
	g := newGrid(t)
	old := g.Start()

	require.NoError(t, g.MoveStart(grid.Position{X: 2, Y: 2}))
	assert.Equal(t, grid.Position{X: 2, Y: 2}, g.Start())
	assert.Equal(t, grid.EmptyTile, g.At(old))
	assert.Equal(t, grid.StartTile, g.At(g.Start()))

	// Onto the other special tile
	require.ErrorIs(t, g.MoveStart(g.End()), grid.ErrOccupied)

	// Onto a wall
	_, err := g.SetWall(grid.Position{X: 1, Y: 3}, true)
	require.NoError(t, err)
	require.ErrorIs(t, g.MoveEnd(grid.Position{X: 1, Y: 3}), grid.ErrOccupied)

	// Onto a transient tile is allowed
	require.NoError(t, g.Set(grid.Position{X: 3, Y: 1}, grid.DistanceTile(2)))
	require.NoError(t, g.MoveEnd(grid.Position{X: 3, Y: 1}))
	assert.Equal(t, grid.EndTile, g.At(grid.Position{X: 3, Y: 1}))

	require.ErrorIs(t, g.MoveEnd(grid.Position{X: 4, Y: 1}), grid.ErrBorder)
}

func TestResetTransientAndClearWalls(t *testing.T) {
	g := newGrid(t)
	require.NoError(t, g.Set(grid.Position{X: 2, Y: 1}, grid.DistanceTile(1)))
	require.NoError(t, g.Set(grid.Position{X: 2, Y: 2}, grid.MarkerTile))
	_, err := g.SetWall(grid.Position{X: 1, Y: 2}, true)
	require.NoError(t, err)

	assert.True(t, g.HasTransient())
	assert.Equal(t, 2, g.ResetTransient())
	assert.False(t, g.HasTransient())
	assert.Equal(t, 1, g.Walls(), "reset leaves walls alone")

	assert.Equal(t, 1, g.ClearWalls())
	assert.Equal(t, 0, g.Walls())
	assert.Equal(t, grid.StartTile, g.At(g.Start()))
}

func TestClone(t *testing.T) {
	g := newGrid(t)
	c := g.Clone()
	_, err := c.SetWall(grid.Position{X: 2, Y: 2}, true)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Walls(), "clone must not share cells")
	assert.Equal(t, 1, c.Walls())
}

func TestParseRoundTrip(t *testing.T) {
	layout := `
#####
#S..#
#.#.#
#..E#
#####
`
	g, err := grid.Parse(layout)
	require.NoError(t, err)
	assert.Equal(t, grid.Position{X: 1, Y: 1}, g.Start())
	assert.Equal(t, grid.Position{X: 3, Y: 3}, g.End())
	assert.Equal(t, 1, g.Walls())
	assert.Equal(t, "#####\n#S..#\n#.#.#\n#..E#\n#####\n", g.String())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"Empty":      "",
		"Ragged":     "#####\n#S.E#\n####",
		"NoEnd":      "#####\n#S..#\n#####",
		"OpenBorder": "#####\n.S.E#\n#####",
		"Glyph":      "#####\n#S?E#\n#####",
	}
	for name, layout := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := grid.Parse(layout)
			require.ErrorIs(t, err, grid.ErrBadLayout)
		})
	}
}
