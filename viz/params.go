package viz

import "time"

// Params provides the details of how to run the visualizer.
type Params struct {
	Width        int // Width of the grid in cells, border included
	Height       int // Height of the grid in cells, border included
	TileSize     int // Edge of one cell in pixels
	Threads      int // Workers used by each automaton step
	LifeInterval time.Duration
	SeedDensity  float64 // Probability of a wall per cell when seeding
	AnimateSteps int     // Frontier pops per frame while animating the fill
	Seed         int64
}

// DefaultParams matches a 1920×1080 screen split into 24 px tiles.
func DefaultParams() Params {
	return Params{
		Width:        1920 / 24,
		Height:       1080 / 24,
		TileSize:     24,
		Threads:      4,
		LifeInterval: time.Second,
		SeedDensity:  0.3,
		AnimateSteps: 8,
		Seed:         time.Now().UnixNano(),
	}
}

// Fit resizes the grid to as many whole tiles as fit in a width×height pixel area.
func (p Params) Fit(width, height int) Params {
	if p.TileSize > 0 {
		p.Width = width / p.TileSize
		p.Height = height / p.TileSize
	}
	return p
}
