package main

import (
	"errors"
	"fmt"
	"math/rand"

	"uk.ac.bris.cs/leepath/grid"
	"uk.ac.bris.cs/leepath/lee"
	"uk.ac.bris.cs/leepath/life"
)

type options struct {
	width, height int
	turns         int
	density       float64
	seed          int64
	threads       int
	quiet         bool
}

type summary struct {
	Turns   int
	Found   int
	Total   int // Sum of the lengths of every path found
	Longest int
	Walls   int // Walls left after the last turn
}

func (s summary) Mean() float64 {
	if s.Found == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Found)
}

func (s summary) String() string {
	return fmt.Sprintf("%d turns, %d paths found, mean length %.2f, longest path %d",
		s.Turns, s.Found, s.Mean(), s.Longest)
}

// newBoard builds a bordered grid with Start and End in opposite interior
// corners and scatters walls over it.
func newBoard(o options) (*grid.Grid, int, error) {
	g, err := grid.New(o.width, o.height,
		grid.Position{X: 1, Y: 1},
		grid.Position{X: o.width - 2, Y: o.height - 2})
	if err != nil {
		return nil, 0, err
	}
	placed := life.Seed(g, rand.New(rand.NewSource(o.seed)), o.density)
	return g, placed, nil
}

// runTurns steps the automaton and solves the board once per turn.
// tick is called after every turn.
func runTurns(g *grid.Grid, o options, tick func()) (summary, error) {
	var s summary
	for turn := 0; turn < o.turns; turn++ {
		life.Step(g, o.threads)
		res, err := lee.Solve(g)
		switch {
		case errors.Is(err, lee.ErrNoPath):
		case err != nil:
			return s, fmt.Errorf("turn %d: %w", turn, err)
		default:
			s.Found++
			s.Total += res.Length
			if res.Length > s.Longest {
				s.Longest = res.Length
			}
		}
		s.Turns++
		if tick != nil {
			tick()
		}
	}
	s.Walls = g.Walls()
	return s, nil
}
