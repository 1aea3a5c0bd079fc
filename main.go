package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/utils"
)

const defaultConfigFile = "config.json"

const usage = `Conway's Game of Life on a torus

Example: torus-life -width 64 -height 32 -delay 16ms -random-cell 64 -h-line 2 -v-line 1

- Left-click on a cell to toggle its state.
- Right-click or [Space] to toggle play/pause.
- [n] steps once while paused, [r] reseeds, [q] or [Esc] quits.

Flags:
`

func main() {
	log.SetPrefix("[torus-life] ")

	config, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}

	if err := run(config); err != nil {
		log.Fatalf("%+v", err)
	}
}

// loadConfig builds the configuration from defaults, an optional JSON file and
// command-line flags, in that order of precedence
func loadConfig(args []string) (utils.Config, error) {
	path := defaultConfigFile
	probe := newFlagSet(&utils.Config{}, &path)
	probe.SetOutput(os.Stderr)
	if err := probe.Parse(args); err != nil {
		return utils.Config{}, err
	}

	config, err := utils.LoadConfig(path)
	if err != nil {
		if path != defaultConfigFile || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	fs := newFlagSet(&config, &path)
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}
	config.Normalize()
	return config, nil
}

func newFlagSet(config *utils.Config, path *string) *flag.FlagSet {
	fs := flag.NewFlagSet("torus-life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.StringVar(path, "config", *path, "JSON configuration file.")
	config.RegisterFlags(fs)
	return fs
}

// run owns the screen and the game loop until the user quits
func run(config utils.Config) error {
	rng, seed := newRand(config.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[run] failed to initialize screen")
	}

	// the screen owns the terminal, so logs are held until it is released
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer func() {
		screen.Fini()
		log.SetOutput(os.Stderr)
		os.Stderr.Write(logs.Bytes())
	}()

	screen.EnableMouse()
	screen.Clear()

	g, err := initializeGame(config, screen, rng)
	if err != nil {
		return err
	}
	w, h := g.board.Dimensions()
	log.Printf("grid %dx%d, seed %d, initial living cells %d", w, h, seed, g.board.Population())
	cols, rows := g.renderer.ScreenSize(w, h)
	if sw, sh := screen.Size(); sw < cols || sh < rows {
		log.Printf("terminal is %dx%d, the board needs %dx%d", sw, sh, cols, rows)
	}

	events := make(chan tcell.Event, 16)
	stop := make(chan struct{})
	go screen.ChannelEvents(events, stop)
	defer close(stop)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	g.render()
	for !g.quit {
		select {
		case <-sigChan:
			g.quit = true
		case ev, ok := <-events:
			if !ok {
				g.quit = true
				break
			}
			g.handleEvent(ev)
		case <-ticker.C:
			g.tick()
		}
		g.render()
	}

	log.Printf("stopped after %d generations in %.1f seconds, avg population %.1f",
		g.board.Generation(), time.Since(g.stats.StartTime).Seconds(), g.stats.AveragePopulation)
	return nil
}
