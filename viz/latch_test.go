package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatch_TapInsideOneFrame(t *testing.T) {
	l := NewLatch()
	var in InputState

	l.Key(KeyM, true)
	l.Key(KeyM, false)
	in.Advance(l.Poll())
	assert.True(t, in.KeyPressed(KeyM))

	in.Advance(l.Poll())
	assert.True(t, in.KeyReleased(KeyM))

	in.Advance(l.Poll())
	assert.False(t, in.KeyHeld(KeyM))
	assert.False(t, in.KeyReleased(KeyM))
}

func TestLatch_ClickInsideOneFrame(t *testing.T) {
	l := NewLatch()
	var in InputState

	l.Left(true, 35, 25)
	l.Left(false, 35, 25)
	in.Advance(l.Poll())
	assert.True(t, in.Curr.Left)
	assert.Equal(t, Poll{X: 35, Y: 25, Left: true}, in.Curr)

	in.Advance(l.Poll())
	assert.True(t, in.LeftReleased())
}

func TestLatch_IndependentInputsShareAFrame(t *testing.T) {
	l := NewLatch()
	l.Key(KeySpace, true)
	l.Key(KeyLShift, true)
	l.Right(true, 5, 5)
	p := l.Poll()
	assert.True(t, p.Keys.Has(KeySpace))
	assert.True(t, p.Keys.Has(KeyLShift))
	assert.True(t, p.Right)
	assert.Empty(t, l.pending)
}

// TestLatch_SpaceTapTogglesLife drives a session through a latch where the
// whole tap lands between two frames.
func TestLatch_SpaceTapTogglesLife(t *testing.T) {
	h := newHarness(t)
	l := NewLatch()

	l.Key(KeySpace, true)
	l.Key(KeySpace, false)
	h.frame(l.Poll())
	h.frame(l.Poll())
	assert.Equal(t, Running, h.s.State())
}

func TestLatch_MoveKeepsButtons(t *testing.T) {
	l := NewLatch()
	l.Left(true, 0, 0)
	l.Poll()
	l.Move(40, 12)
	assert.Equal(t, Poll{X: 40, Y: 12, Left: true}, l.Poll())
}
