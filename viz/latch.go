package viz

const (
	leftButton  = 16
	rightButton = 17
)

// change is one press or release waiting to reach a Poll.
type change struct {
	input uint8 // Key, or leftButton/rightButton
	down  bool
	x, y  int
}

// Latch collects device events between frames and hands out one Poll per
// frame. A press and release of the same input inside one frame are split
// across consecutive polls so InputState still sees both edges.
type Latch struct {
	poll    Poll
	pending []change
}

// NewLatch returns a latch with no keys or buttons down and the pointer off the window.
func NewLatch() *Latch {
	return &Latch{poll: Poll{X: -1, Y: -1}}
}

// Key records k going down or up.
func (l *Latch) Key(k Key, down bool) {
	l.pending = append(l.pending, change{input: uint8(k), down: down, x: -1, y: -1})
}

// Left records the left button at pixel (x, y).
func (l *Latch) Left(down bool, x, y int) {
	l.pending = append(l.pending, change{input: leftButton, down: down, x: x, y: y})
}

// Right records the right button at pixel (x, y).
func (l *Latch) Right(down bool, x, y int) {
	l.pending = append(l.pending, change{input: rightButton, down: down, x: x, y: y})
}

// Move records the pointer position. It takes effect on the next Poll.
func (l *Latch) Move(x, y int) {
	l.poll.X, l.poll.Y = x, y
}

// Poll applies pending changes in order, stopping before the first change to
// an input already changed in this poll. The rest wait for the next call.
func (l *Latch) Poll() Poll {
	var touched uint32
	i := 0
	for ; i < len(l.pending); i++ {
		c := l.pending[i]
		if touched&(1<<c.input) != 0 {
			break
		}
		touched |= 1 << c.input
		l.apply(c)
	}
	l.pending = l.pending[:copy(l.pending, l.pending[i:])]
	return l.poll
}

func (l *Latch) apply(c change) {
	switch c.input {
	case leftButton:
		l.poll.Left = c.down
		l.poll.X, l.poll.Y = c.x, c.y
	case rightButton:
		l.poll.Right = c.down
		l.poll.X, l.poll.Y = c.x, c.y
	default:
		k := Key(c.input)
		if c.down {
			l.poll.Keys = l.poll.Keys.With(k)
		} else {
			l.poll.Keys &^= KeySet(0).With(k)
		}
	}
}
