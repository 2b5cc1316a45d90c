// Package viz is the host loop of the visualizer without any window code:
// it turns per-frame input into grid edits, steps the automaton, reruns the
// pathfinder and reports what happened as Events.
package viz

import (
	"errors"
	"math/rand"
	"time"

	"uk.ac.bris.cs/leepath/grid"
	"uk.ac.bris.cs/leepath/lee"
	"uk.ac.bris.cs/leepath/life"
)

// ErrParams indicates Params that cannot describe a grid.
var ErrParams = errors.New("viz: invalid params")

// Session owns the grid for the life of the program. Update must be called
// from one goroutine only, once per frame.
type Session struct {
	params Params
	grid   *grid.Grid
	events chan<- Event
	now    func() time.Time
	rng    *rand.Rand

	frames        int
	state         State
	generation    int
	lastStep      time.Time
	showDistances bool

	animating bool
	stepper   *lee.Stepper

	// Start or End while dragging one, Empty otherwise
	selected grid.Kind

	result lee.Result
	found  bool
}

// NewSession allocates the grid with Start in the top-left interior corner and
// End in the bottom-right one. Events are dropped when the channel is full or nil.
func NewSession(p Params, events chan<- Event) (*Session, error) {
	if p.TileSize <= 0 {
		return nil, ErrParams
	}
	g, err := grid.New(p.Width, p.Height,
		grid.Position{X: 1, Y: 1},
		grid.Position{X: p.Width - 2, Y: p.Height - 2})
	if err != nil {
		return nil, errors.Join(ErrParams, err)
	}
	if p.AnimateSteps < 1 {
		p.AnimateSteps = 1
	}
	return &Session{
		params: p,
		grid:   g,
		events: events,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(p.Seed)),
		state:  Paused,
	}, nil
}

// Grid exposes the board for rendering. Callers must not edit it.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Params returns the params the session was built with.
func (s *Session) Params() Params { return s.params }

// ShowDistances reports whether Distance tiles should be drawn as a heat map.
func (s *Session) ShowDistances() bool { return s.showDistances }

// Animating reports whether the flood fill advances a few cells per frame.
func (s *Session) Animating() bool { return s.animating }

// State returns the automaton state, or Quitting once the user asked to leave.
func (s *Session) State() State { return s.state }

// Frames returns the number of completed updates.
func (s *Session) Frames() int { return s.frames }

// Result returns the latest pathfinder outcome.
func (s *Session) Result() (lee.Result, bool) { return s.result, s.found }

// Update runs one frame: edits from input, the automaton, then the pathfinder.
func (s *Session) Update(in InputState) {
	if s.state == Quitting {
		return
	}
	if !s.animating {
		s.grid.ResetTransient()
	}

	dirty := false
	for _, cmd := range keyCommands(in) {
		switch cmd {
		case clearWalls:
			removed := s.grid.ClearWalls()
			s.emit(WallsCleared{Frame: s.frames, Removed: removed})
			dirty = true
		case quit:
			s.setState(Quitting)
			return
		case toggleLife:
			if s.state == Running {
				s.setState(Paused)
			} else {
				s.setState(Running)
			}
		case toggleDistances:
			s.showDistances = !s.showDistances
		case seedWalls:
			placed := life.Seed(s.grid, s.rng, s.params.SeedDensity)
			s.emit(WallsSeeded{Frame: s.frames, Placed: placed})
			dirty = true
		case toggleAnimation:
			s.animating = !s.animating
			s.stepper = nil
			s.grid.ResetTransient()
		}
	}

	if s.moveSpecial(in) {
		dirty = true
	}
	// A selected special tile suppresses painting
	if s.selected == grid.Empty && s.paintWalls(in) {
		dirty = true
	}
	if s.stepLife() {
		dirty = true
	}

	if s.animating {
		s.animate(dirty)
	} else {
		res, err := lee.FindShortestPath(s.grid)
		s.record(res, err == nil)
	}
	s.emit(FrameComplete{Frame: s.frames})
	s.frames++
}

// moveSpecial picks up Start or End with a right click and drops it on each
// free cell the pointer enters. Another right click lets go.
func (s *Session) moveSpecial(in InputState) bool {
	ts := s.params.TileSize
	tile := in.Tile(ts)

	if in.RightPressed() {
		kind := s.grid.At(tile).Kind
		if s.selected == grid.Empty && (kind == grid.Start || kind == grid.End) {
			s.selected = kind
		} else {
			s.selected = grid.Empty
		}
	}
	if s.selected == grid.Empty || tile == in.PrevTile(ts) {
		return false
	}

	move, at := s.grid.MoveEnd, s.grid.End()
	if s.selected == grid.Start {
		move, at = s.grid.MoveStart, s.grid.Start()
	}
	if tile == at {
		return false
	}
	if err := move(tile); err != nil {
		// Walls, the other special tile and the border just don't accept it
		return false
	}
	s.emit(SpecialMoved{Frame: s.frames, Kind: s.selected, To: tile})
	return true
}

// paintWalls paints under the pointer with the left button; holding LShift erases.
// A click applies on release, a drag applies on every new cell entered.
func (s *Session) paintWalls(in InputState) bool {
	ts := s.params.TileSize
	tile := in.Tile(ts)
	wall := !in.KeyHeld(KeyLShift)

	apply := in.LeftReleased() || (in.LeftDragging() && tile != in.PrevTile(ts))
	if !apply {
		return false
	}
	changed, err := s.grid.SetWall(tile, wall)
	return err == nil && changed
}

// stepLife advances the automaton at most once per LifeInterval while running.
func (s *Session) stepLife() bool {
	if s.state != Running {
		return false
	}
	now := s.now()
	if now.Sub(s.lastStep) < s.params.LifeInterval {
		return false
	}
	s.lastStep = now
	s.generation++
	gen := life.Step(s.grid, s.params.Threads)
	s.emit(GenerationComplete{
		Frame:      s.frames,
		Generation: s.generation,
		Born:       gen.Born,
		Died:       gen.Died,
		Walls:      gen.Walls,
	})
	return gen.Born > 0 || gen.Died > 0
}

// animate restarts the fill after an edit and otherwise pops AnimateSteps
// cells from the running one.
func (s *Session) animate(dirty bool) {
	if dirty || s.stepper == nil {
		s.grid.ResetTransient()
		st, err := lee.NewStepper(s.grid)
		if err != nil {
			s.stepper = nil
			s.record(lee.Result{}, false)
			return
		}
		s.stepper = st
	}
	for i := 0; i < s.params.AnimateSteps && !s.stepper.Done(); i++ {
		snap := s.stepper.Step()
		if snap.Done {
			s.record(snap.Result, snap.Found)
		}
	}
}

func (s *Session) record(res lee.Result, found bool) {
	if found != s.found || res.Length != s.result.Length || s.frames == 0 {
		s.emit(PathChanged{Frame: s.frames, Found: found, Length: res.Length})
	}
	s.result, s.found = res, found
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.state = state
	s.emit(StateChange{Frame: s.frames, NewState: state})
}

func (s *Session) emit(e Event) {
	if s.events == nil {
		return
	}
	select {
	case s.events <- e:
	default:
	}
}
