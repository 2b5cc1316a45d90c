package viz

import "uk.ac.bris.cs/leepath/grid"

// Key is a keyboard key the session reacts to.
type Key uint8

const (
	KeyEscape Key = iota
	KeySpace
	KeyBackspace
	KeyM
	KeyR
	KeyA
	KeyLShift
)

// KeySet is a set of held keys.
type KeySet uint16

// With returns the set plus k.
func (s KeySet) With(k Key) KeySet { return s | 1<<k }

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

// Poll is the raw device state sampled once per frame.
type Poll struct {
	X, Y  int // Pointer position in pixels
	Left  bool
	Right bool
	Keys  KeySet
}

// InputState holds the previous and current poll so handlers can see edges.
// The host loop owns it and calls Advance once per frame.
type InputState struct {
	Prev, Curr Poll
}

// Advance shifts the current poll into Prev and stores next.
func (in *InputState) Advance(next Poll) {
	in.Prev = in.Curr
	in.Curr = next
}

// KeyPressed reports a key that went down this frame.
func (in InputState) KeyPressed(k Key) bool {
	return in.Curr.Keys.Has(k) && !in.Prev.Keys.Has(k)
}

// KeyReleased reports a key that came up this frame.
func (in InputState) KeyReleased(k Key) bool {
	return !in.Curr.Keys.Has(k) && in.Prev.Keys.Has(k)
}

// KeyHeld reports a key that is down now.
func (in InputState) KeyHeld(k Key) bool {
	return in.Curr.Keys.Has(k)
}

// LeftReleased reports the left button coming up this frame.
func (in InputState) LeftReleased() bool { return in.Prev.Left && !in.Curr.Left }

// LeftDragging reports the left button held across both polls.
func (in InputState) LeftDragging() bool { return in.Prev.Left && in.Curr.Left }

// RightPressed reports the right button going down this frame.
func (in InputState) RightPressed() bool { return in.Curr.Right && !in.Prev.Right }

// Tile converts the current pointer position into a cell.
func (in InputState) Tile(tileSize int) grid.Position {
	return tileOf(in.Curr, tileSize)
}

// PrevTile converts the previous pointer position into a cell.
func (in InputState) PrevTile(tileSize int) grid.Position {
	return tileOf(in.Prev, tileSize)
}

func tileOf(p Poll, tileSize int) grid.Position {
	if tileSize <= 0 || p.X < 0 || p.Y < 0 {
		return grid.Position{X: -1, Y: -1}
	}
	return grid.Position{X: p.X / tileSize, Y: p.Y / tileSize}
}
