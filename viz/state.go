package viz

// State represents the run state of the automaton.
type State int

const (
	Paused State = iota
	Running
	Quitting
)

// String methods allow the different types of Events and States to be printed.
func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}
