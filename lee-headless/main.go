package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/google/uuid"
	"golang.org/x/term"

	"uk.ac.bris.cs/leepath/config"
	"uk.ac.bris.cs/leepath/logger"
)

// bindFlags registers the runner's flags on fs. The returned options are
// filled in when fs is parsed.
func bindFlags(fs *flag.FlagSet) *options {
	o := new(options)
	fs.IntVar(&o.width, "width", 80, "grid width in cells, border included")
	fs.IntVar(&o.height, "height", 45, "grid height in cells, border included")
	fs.IntVar(&o.turns, "turns", 100, "number of automaton turns to run")
	fs.Float64Var(&o.density, "density", 0.3, "probability of a wall on each cell when seeding")
	fs.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "random seed for the initial walls")
	fs.IntVar(&o.threads, "threads", 4, "workers used by each automaton step")
	fs.BoolVar(&o.quiet, "quiet", false, "disable the spinner and progress bar")
	return o
}

func main() {
	o := bindFlags(flag.CommandLine)
	flag.Parse()

	appLogger, _ := logger.New("HEADLESS", config.ColorMagenta, os.Stderr)
	appLogger.Infof("run %s: %dx%d, %d turns, seed %d", uuid.New(), o.width, o.height, o.turns, o.seed)

	interactive := !o.quiet && term.IsTerminal(int(os.Stdout.Fd()))

	var spinner *wow.Wow
	if interactive {
		spinner = wow.New(os.Stdout, spin.Get(spin.Dots), " Seeding walls")
		spinner.Start()
	}
	g, placed, err := newBoard(*o)
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		appLogger.Errorf("building grid: %v", err)
		os.Exit(1)
	}
	if spinner != nil {
		spinner.PersistWith(spin.Spinner{Frames: []string{"✓"}}, fmt.Sprintf(" Seeded %d walls", placed))
	}

	var tick func()
	var bar *pb.ProgressBar
	if interactive {
		bar = pb.New(o.turns).SetWriter(os.Stdout).Start()
		tick = func() { bar.Increment() }
	}

	s, err := runTurns(g, *o, tick)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		appLogger.Errorf("%v", err)
		os.Exit(1)
	}

	fmt.Println(s)
	appLogger.Infof("%d walls left", s.Walls)
}
