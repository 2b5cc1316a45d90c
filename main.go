package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"uk.ac.bris.cs/leepath/config"
	"uk.ac.bris.cs/leepath/logger"
	"uk.ac.bris.cs/leepath/sdl"
	"uk.ac.bris.cs/leepath/viz"
)

// main is the function called when starting the visualizer with 'go run .'
func main() {
	appLogger, _ := logger.New("APP", config.ColorGreen, os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		appLogger.Errorf("loading config: %v", err)
		os.Exit(1)
	}

	params := viz.DefaultParams()
	opts := sdl.Options{FrameDelay: 16}

	bindFlags(flag.CommandLine, &cfg, &params)
	flag.Parse()

	if cfg.TileSize <= 0 {
		appLogger.Errorf("tile size must be positive, got %d", cfg.TileSize)
		os.Exit(1)
	}
	params.Width = cfg.Cols()
	params.Height = cfg.Rows()
	params.TileSize = cfg.TileSize
	params.Threads = cfg.Threads
	params.LifeInterval = cfg.LifeInterval

	opts.Title = cfg.Title
	opts.Width = cfg.ScreenWidth
	opts.Height = cfg.ScreenHeight
	opts.Fullscreen = cfg.Fullscreen

	if cfg.Fullscreen {
		appLogger.Infof("run %s: fullscreen, tiles of %d px, %d threads", uuid.New(), params.TileSize, params.Threads)
	} else {
		appLogger.Infof("run %s: %dx%d tiles of %d px, %d threads", uuid.New(), params.Width, params.Height, params.TileSize, params.Threads)
	}

	events := make(chan viz.Event, 1000)
	done := make(chan struct{})
	go func() {
		defer close(done)
		logEvents(appLogger, events)
	}()

	err = sdl.Run(opts, params, events)
	close(events)
	<-done
	if err != nil {
		appLogger.Errorf("%v", err)
		os.Exit(1)
	}
	appLogger.Info("Closing")
}

// bindFlags registers per-run overrides of cfg and params on fs.
func bindFlags(fs *flag.FlagSet, cfg *config.Config, params *viz.Params) {
	fs.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "Specify the window width in pixels.")
	fs.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "Specify the window height in pixels.")
	fs.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "Specify the edge of one tile in pixels.")
	fs.IntVar(&cfg.Threads, "t", cfg.Threads, "Specify the number of worker threads used by the automaton.")
	fs.DurationVar(&cfg.LifeInterval, "interval", cfg.LifeInterval, "Specify the minimum time between automaton steps.")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "Open a desktop-sized window.")
	fs.Float64Var(&params.SeedDensity, "density", params.SeedDensity, "Specify the wall probability used by the R key.")
	fs.IntVar(&params.AnimateSteps, "steps", params.AnimateSteps, "Specify the frontier pops per frame in animated mode.")
	fs.Int64Var(&params.Seed, "seed", params.Seed, "Specify the random seed used by the R key.")
}

// logEvents prints every event except the per-frame ticks until events is closed.
func logEvents(l *logger.Logger, events <-chan viz.Event) {
	for event := range events {
		switch e := event.(type) {
		case viz.FrameComplete:
		case viz.PathChanged:
			if e.Found {
				l.Info(fmt.Sprintf("Frame %d: %v", e.Frame, e))
			} else {
				l.Warning(fmt.Sprintf("Frame %d: %v", e.Frame, e))
			}
		default:
			l.Info(fmt.Sprintf("Frame %d: %v", event.GetFrame(), event))
		}
	}
}
