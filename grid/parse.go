package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadLayout indicates a text layout that Parse cannot turn into a grid.
var ErrBadLayout = errors.New("grid: malformed layout")

// Parse builds a grid from the glyphs written by String: '#' wall, 'S' start,
// 'E' end, anything in ".o*" empty. Rows are separated by newlines and blank
// lines are ignored. Every row must have the same width and the border must be '#'.
func Parse(layout string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadLayout)
	}
	width := len(rows[0])
	var start, end []Position
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadLayout, y, len(row), width)
		}
		for x, c := range row {
			switch c {
			case 'S':
				start = append(start, Position{x, y})
			case 'E':
				end = append(end, Position{x, y})
			}
		}
	}
	if len(start) != 1 || len(end) != 1 {
		return nil, fmt.Errorf("%w: need exactly one S and one E", ErrBadLayout)
	}

	g, err := New(width, len(rows), start[0], end[0])
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, c := range row {
			p := Position{x, y}
			switch c {
			case '#':
				if g.Interior(p) {
					g.cells[g.index(p)] = BlockedTile
				}
			case 'S', 'E', '.', 'o', '*':
				if !g.Interior(p) {
					return nil, fmt.Errorf("%w: border cell %v is %q", ErrBadLayout, p, c)
				}
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at %v", ErrBadLayout, c, p)
			}
		}
	}
	return g, nil
}
