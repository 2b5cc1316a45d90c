package lee

import "uk.ac.bris.cs/leepath/grid"

// Result contains the outcome of one flood fill.
type Result struct {
	Found bool
	// Length is the number of orthogonal steps from Start to End.
	Length int
	// Path runs from Start to End inclusive.
	Path []grid.Position
	// Markers are the cells strictly between Start and End, now PathMarker tiles.
	Markers []grid.Position
	// Expanded counts frontier pops.
	Expanded int
}

// FindShortestPath floods the grid from Start and marks a shortest path to End.
// The grid must hold exactly its Start and End plus Empty and Blocked tiles;
// call Solve, or grid.ResetTransient first, when reusing a grid.
// On ErrNoPath the Distance labels of the exhausted fill stay on the grid.
func FindShortestPath(g *grid.Grid) (Result, error) {
	s, err := NewStepper(g)
	if err != nil {
		return Result{}, err
	}
	return s.Run()
}

// Solve clears the previous run's Distance and PathMarker tiles, then runs
// FindShortestPath.
func Solve(g *grid.Grid) (Result, error) {
	g.ResetTransient()
	return FindShortestPath(g)
}
