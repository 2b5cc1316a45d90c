package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/leepath/grid"
	"uk.ac.bris.cs/leepath/viz"
)

// Window is an SDL window with an accelerated renderer that draws one grid.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	tileSize int32
}

// NewWindow initialises SDL and opens a width×height window.
func NewWindow(title string, width, height, tileSize int32, fullscreen bool) (*Window, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return &Window{
		window:   window,
		renderer: renderer,
		tileSize: tileSize,
	}, nil
}

// Size returns the size of the window in screen coordinates, which differs from
// the requested size in fullscreen.
func (w *Window) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

// Destroy releases the renderer and window and shuts SDL down.
func (w *Window) Destroy() {
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}

// Render clears the screen, draws every tile and presents the frame.
func (w *Window) Render(g *grid.Grid, showDistances bool) error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}

	var drawErr error
	g.Each(func(p grid.Position, t grid.Tile) {
		if drawErr != nil {
			return
		}
		drawErr = w.drawTile(p, t, showDistances)
	})
	if drawErr != nil {
		return drawErr
	}

	w.renderer.Present()
	return nil
}

func (w *Window) drawTile(p grid.Position, t grid.Tile, showDistances bool) error {
	rect := &sdl.Rect{
		X: int32(p.X) * w.tileSize,
		Y: int32(p.Y) * w.tileSize,
		W: w.tileSize,
		H: w.tileSize,
	}

	fill := viz.TileColor(t, showDistances)
	if err := w.renderer.SetDrawColor(fill.R, fill.G, fill.B, fill.A); err != nil {
		return err
	}
	if err := w.renderer.FillRect(rect); err != nil {
		return err
	}
	if !viz.Outlined(t, showDistances) {
		return nil
	}

	outline := viz.OutlineColor
	if err := w.renderer.SetDrawColor(outline.R, outline.G, outline.B, outline.A); err != nil {
		return err
	}
	return w.renderer.DrawRect(rect)
}
