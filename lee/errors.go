package lee

import "errors"

var (
	// ErrNoPath indicates the flood fill exhausted its frontier without reaching End.
	ErrNoPath = errors.New("lee: no path between start and end")
	// ErrMissingEndpoint indicates a grid whose Start or End position does not
	// hold its tile, such as the zero Grid.
	ErrMissingEndpoint = errors.New("lee: grid has no start or end tile")
	// ErrStaleTiles indicates transient tiles were not reset before a run.
	ErrStaleTiles = errors.New("lee: grid holds tiles from a previous run")
	// ErrBrokenTrail indicates the backtrace found no neighbour one step closer to Start.
	ErrBrokenTrail = errors.New("lee: distance labels do not lead back to start")
)
