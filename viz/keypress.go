package viz

// keyCommand is an action requested from the keyboard.
type keyCommand uint8

const (
	clearWalls keyCommand = iota
	quit
	toggleLife
	toggleDistances
	seedWalls
	toggleAnimation
)

type keyEdge uint8

const (
	onPress keyEdge = iota
	onRelease
)

// keyBindings lists what each key does. Space fires on release, the rest on press.
var keyBindings = []struct {
	key  Key
	edge keyEdge
	cmd  keyCommand
}{
	{KeyBackspace, onPress, clearWalls},
	{KeyEscape, onPress, quit},
	{KeySpace, onRelease, toggleLife},
	{KeyM, onPress, toggleDistances},
	{KeyR, onPress, seedWalls},
	{KeyA, onPress, toggleAnimation},
}

// keyCommands returns the commands triggered by this frame's key edges, in binding order.
func keyCommands(in InputState) []keyCommand {
	var cmds []keyCommand
	for _, b := range keyBindings {
		switch b.edge {
		case onPress:
			if in.KeyPressed(b.key) {
				cmds = append(cmds, b.cmd)
			}
		case onRelease:
			if in.KeyReleased(b.key) {
				cmds = append(cmds, b.cmd)
			}
		}
	}
	return cmds
}
