// Package sdl runs the interactive visualizer in an SDL window: it pumps
// window events into a viz.Session once per frame and draws the grid.
package sdl

import (
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/leepath/viz"
)

// SDL wants every call on the thread that initialised it.
func init() {
	runtime.LockOSThread()
}

// Options describes the window itself; the grid comes from viz.Params.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	FrameDelay uint32 // Milliseconds slept after each frame
}

var keymap = map[sdl.Keycode]viz.Key{
	sdl.K_ESCAPE:    viz.KeyEscape,
	sdl.K_SPACE:     viz.KeySpace,
	sdl.K_BACKSPACE: viz.KeyBackspace,
	sdl.K_m:         viz.KeyM,
	sdl.K_r:         viz.KeyR,
	sdl.K_a:         viz.KeyA,
	sdl.K_LSHIFT:    viz.KeyLShift,
}

// Run opens the window and drives a new session until the window is closed
// or the session quits. Events are forwarded to events when it is not nil.
// A fullscreen window sizes the grid from the desktop instead of p.
func Run(opts Options, p viz.Params, events chan<- viz.Event) error {
	w, err := NewWindow(opts.Title, int32(opts.Width), int32(opts.Height), int32(p.TileSize), opts.Fullscreen)
	if err != nil {
		return err
	}
	defer w.Destroy()

	if opts.Fullscreen {
		width, height := w.Size()
		p = p.Fit(width, height)
	}
	session, err := viz.NewSession(p, events)
	if err != nil {
		return err
	}

	var (
		in    viz.InputState
		latch = viz.NewLatch()
	)

sdlLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				break sdlLoop
			case *sdl.KeyboardEvent:
				k, ok := keymap[e.Keysym.Sym]
				if !ok || e.Repeat != 0 {
					continue
				}
				latch.Key(k, e.Type == sdl.KEYDOWN)
			case *sdl.MouseButtonEvent:
				down := e.State == sdl.PRESSED
				switch e.Button {
				case sdl.BUTTON_LEFT:
					latch.Left(down, int(e.X), int(e.Y))
				case sdl.BUTTON_RIGHT:
					latch.Right(down, int(e.X), int(e.Y))
				}
			case *sdl.MouseMotionEvent:
				latch.Move(int(e.X), int(e.Y))
			}
		}

		in.Advance(latch.Poll())
		session.Update(in)
		if session.State() == viz.Quitting {
			break sdlLoop
		}

		if err := w.Render(session.Grid(), session.ShowDistances()); err != nil {
			return err
		}
		sdl.Delay(opts.FrameDelay)
	}
	return nil
}
