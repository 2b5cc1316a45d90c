package lee

import (
	"fmt"

	"uk.ac.bris.cs/leepath/grid"
)

// Snapshot exposes the state of a Stepper after one Step.
type Snapshot struct {
	Current  grid.Position
	Frontier []grid.Position
	Step     int
	Done     bool
	Found    bool
	// Result is set once Done and Found are both true.
	Result Result
	// Err is ErrNoPath when the fill exhausted, or the failure that stopped it.
	Err error
}

// Stepper runs the flood fill one frontier pop per Step. It writes Distance
// and PathMarker tiles into the grid as it goes, so the grid must not be
// edited until the stepper is Done or discarded.
type Stepper struct {
	g     *grid.Grid
	queue []grid.Position
	head  int

	current  grid.Position
	expanded int

	done   bool
	found  bool
	result Result
	err    error
}

// NewStepper validates the grid and seeds the frontier with Start.
func NewStepper(g *grid.Grid) (*Stepper, error) {
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	queue := make([]grid.Position, 1, g.Width()*g.Height())
	queue[0] = g.Start()
	return &Stepper{g: g, queue: queue, current: g.Start()}, nil
}

func checkGrid(g *grid.Grid) error {
	if g.At(g.Start()).Kind != grid.Start || g.At(g.End()).Kind != grid.End {
		return ErrMissingEndpoint
	}
	if g.HasTransient() {
		return ErrStaleTiles
	}
	return nil
}

// Done reports whether the fill has finished.
func (s *Stepper) Done() bool { return s.done }

// Step pops one cell off the frontier and labels its Empty neighbours.
// When End is seen next to the popped cell the backtrace runs immediately.
func (s *Stepper) Step() Snapshot {
	s.advance()
	return s.snapshot()
}

// Run steps until the fill is done.
func (s *Stepper) Run() (Result, error) {
	for !s.done {
		s.advance()
	}
	return s.result, s.err
}

// advance does the work of one Step without copying the frontier out.
func (s *Stepper) advance() {
	if s.done {
		return
	}
	if s.head == len(s.queue) {
		s.finish(ErrNoPath)
		return
	}

	s.current = s.queue[s.head]
	s.head++
	s.expanded++
	d := s.distance(s.current)

	// The remaining neighbours of this cell are still labelled after End is seen
	for _, dir := range grid.Directions {
		next := s.current.Add(dir)
		switch s.g.At(next).Kind {
		case grid.Empty:
			if err := s.g.Set(next, grid.DistanceTile(d+1)); err != nil {
				s.finish(err)
				return
			}
			s.queue = append(s.queue, next)
		case grid.End:
			s.found = true
		}
	}

	if s.found {
		res, err := s.backtrace()
		s.result = res
		s.finish(err)
	}
}

func (s *Stepper) finish(err error) {
	s.done = true
	s.err = err
	s.result.Expanded = s.expanded
}

func (s *Stepper) snapshot() Snapshot {
	frontier := make([]grid.Position, len(s.queue)-s.head)
	copy(frontier, s.queue[s.head:])
	return Snapshot{
		Current:  s.current,
		Frontier: frontier,
		Step:     s.expanded,
		Done:     s.done,
		Found:    s.done && s.err == nil && s.result.Found,
		Result:   s.result,
		Err:      s.err,
	}
}

// distance is 0 on Start and n on Distance(n).
func (s *Stepper) distance(p grid.Position) uint32 {
	t := s.g.At(p)
	if t.Kind == grid.Distance {
		return t.Dist
	}
	return 0
}

// backtrace walks from the cell that saw End back to Start, following labels
// that drop by exactly one, and overwrites every visited label with PathMarker.
func (s *Stepper) backtrace() (Result, error) {
	end := s.g.End()
	reversed := []grid.Position{end}

	cur := s.current
	for s.g.At(cur).Kind != grid.Start {
		d := s.distance(cur)
		prev, ok := s.predecessor(cur, d)
		if !ok {
			return Result{}, fmt.Errorf("at %v with distance %d: %w", cur, d, ErrBrokenTrail)
		}
		if err := s.g.Set(cur, grid.MarkerTile); err != nil {
			return Result{}, err
		}
		reversed = append(reversed, cur)
		cur = prev
	}
	reversed = append(reversed, cur)

	// reverse path
	path := reversed
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	markers := make([]grid.Position, len(path)-2)
	copy(markers, path[1:len(path)-1])

	return Result{
		Found:   true,
		Length:  len(path) - 1,
		Path:    path,
		Markers: markers,
	}, nil
}

func (s *Stepper) predecessor(p grid.Position, d uint32) (grid.Position, bool) {
	for _, dir := range grid.Directions {
		n := p.Add(dir)
		t := s.g.At(n)
		if d == 1 && t.Kind == grid.Start {
			return n, true
		}
		if t.Kind == grid.Distance && t.Dist+1 == d {
			return n, true
		}
	}
	return grid.Position{}, false
}
