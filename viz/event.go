package viz

import (
	"fmt"

	"uk.ac.bris.cs/leepath/grid"
)

// Event is what the session reports to whoever watches the loop.
type Event interface {
	fmt.Stringer
	GetFrame() int
}

// StateChange is sent when the automaton is started, paused, or the session quits.
type StateChange struct {
	Frame    int
	NewState State
}

// PathChanged is sent when the found/length outcome of the pathfinder differs
// from the previous frame.
type PathChanged struct {
	Frame  int
	Found  bool
	Length int
}

// GenerationComplete is sent after every automaton step.
type GenerationComplete struct {
	Frame      int
	Generation int
	Born       int
	Died       int
	Walls      int
}

// WallsCleared is sent when every wall was removed at once.
type WallsCleared struct {
	Frame   int
	Removed int
}

// WallsSeeded is sent when random walls were scattered over the grid.
type WallsSeeded struct {
	Frame  int
	Placed int
}

// SpecialMoved is sent when Start or End is dropped on a new cell.
type SpecialMoved struct {
	Frame int
	Kind  grid.Kind
	To    grid.Position
}

// FrameComplete is sent at the end of every Update.
type FrameComplete struct {
	Frame int
}

func (event StateChange) String() string {
	return event.NewState.String()
}

func (event StateChange) GetFrame() int {
	return event.Frame
}

func (event PathChanged) String() string {
	if !event.Found {
		return "No path"
	}
	return fmt.Sprintf("Path of %d steps", event.Length)
}

func (event PathChanged) GetFrame() int {
	return event.Frame
}

func (event GenerationComplete) String() string {
	return fmt.Sprintf("Generation %d: +%d -%d, %d walls", event.Generation, event.Born, event.Died, event.Walls)
}

func (event GenerationComplete) GetFrame() int {
	return event.Frame
}

func (event WallsCleared) String() string {
	return fmt.Sprintf("Cleared %d walls", event.Removed)
}

func (event WallsCleared) GetFrame() int {
	return event.Frame
}

func (event WallsSeeded) String() string {
	return fmt.Sprintf("Seeded %d walls", event.Placed)
}

func (event WallsSeeded) GetFrame() int {
	return event.Frame
}

func (event SpecialMoved) String() string {
	return fmt.Sprintf("%v moved to %v", event.Kind, event.To)
}

func (event SpecialMoved) GetFrame() int {
	return event.Frame
}

func (event FrameComplete) String() string {
	return fmt.Sprintf("Frame %d", event.Frame)
}

func (event FrameComplete) GetFrame() int {
	return event.Frame
}
