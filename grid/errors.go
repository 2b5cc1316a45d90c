package grid

import "errors"

var (
	// ErrTooSmall indicates a grid without room for an interior.
	ErrTooSmall = errors.New("grid: width and height must be at least 3")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBorder indicates an attempt to write a border cell.
	ErrBorder = errors.New("grid: border cells are permanently blocked")
	// ErrSpecialTile indicates an attempt to create or overwrite Start/End through Set.
	ErrSpecialTile = errors.New("grid: start and end tiles can only be moved")
	// ErrSamePosition indicates Start and End placed on one cell.
	ErrSamePosition = errors.New("grid: start and end must differ")
	// ErrZeroDistance indicates a Distance tile labelled 0; only Start sits at distance 0.
	ErrZeroDistance = errors.New("grid: distance labels start at 1")
	// ErrOccupied indicates a move onto a wall or special tile.
	ErrOccupied = errors.New("grid: destination is not free")
)
