package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// game ties a board to its renderer and the interactive controls. It is
// driven from a single goroutine.
type game struct {
	config   utils.Config
	board    *model.Board
	renderer *model.TerminalRenderer
	stats    *utils.Stats

	running       bool
	quit          bool
	stagnantCount int
	lastFrameTime time.Time
	buttons       tcell.ButtonMask
}

// newRand returns the seeded generator shared by seeding and rendering
func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// initializeGame builds and populates the board described by config
func initializeGame(config utils.Config, screen tcell.Screen, rng *rand.Rand) (*game, error) {
	opts := []model.BoardOption{model.WithStepper(model.NewStepper(config.Workers))}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}

	board, err := model.NewBoard(config.Width, config.Height, rng, opts...)
	if err != nil {
		return nil, err
	}
	populateBoard(board, config)

	return &game{
		config:        config,
		board:         board,
		renderer:      model.NewTerminalRenderer(screen, config.CellWidth, rng),
		stats:         utils.NewStats(),
		running:       !config.StartPaused,
		lastFrameTime: time.Now(),
	}, nil
}

// populateBoard applies the initial seed parameters to a fresh board
func populateBoard(board *model.Board, config utils.Config) {
	board.SeedRandom(config.RandomCells)
	if config.RandomDensity > 0 {
		board.SeedDensity(config.RandomDensity)
	}
	for _, o := range []model.Orientation{model.Horizontal, model.Vertical} {
		count := config.HLines
		if o == model.Vertical {
			count = config.VLines
		}
		if lines := board.SeedRandomLines(o, count); len(lines) > 0 {
			log.Printf("seeded %s lines at %v", o, lines)
		}
	}
	for _, y := range config.HLineIndices {
		board.SeedLine(model.Horizontal, y)
	}
	for _, x := range config.VLineIndices {
		board.SeedLine(model.Vertical, x)
	}
}

// handleEvent applies one input event to the game
func (g *game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			g.quit = true
		case ev.Rune() == ' ':
			g.running = !g.running
		case ev.Rune() == 'n' && !g.running:
			g.step()
		case ev.Rune() == 'r':
			g.restart("manual reseed")
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() &^ g.buttons
		g.buttons = ev.Buttons()
		if pressed&tcell.Button1 != 0 {
			col, row := ev.Position()
			if x, y, ok := g.renderer.CellAt(col, row); ok {
				g.board.Toggle(x, y)
			}
		}
		if pressed&tcell.Button2 != 0 {
			g.running = !g.running
		}
	case *tcell.EventResize:
		g.renderer.Invalidate()
	}
}

// tick advances the board if the simulation is running
func (g *game) tick() {
	if !g.running {
		return
	}
	g.step()
	if g.quit {
		return
	}

	if shouldRestart, reason := checkRestartConditions(g.stats.Population, g.stagnantCount, g.config); shouldRestart && g.config.AutoRestart {
		g.restart(reason)
	}
}

// step advances one generation and updates stats. It ends the game once the
// generation limit is reached.
func (g *game) step() {
	if g.quit {
		return
	}
	frameStart := time.Now()
	g.board.Advance()

	w, h := g.board.Dimensions()
	g.stats.Observe(g.board.Generation(), g.board.Population(), w*h, g.board.Hash(), frameStart.Sub(g.lastFrameTime))
	g.lastFrameTime = frameStart

	if g.stats.IsStagnant() {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	if g.config.MaxGenerations > 0 && g.board.Generation() >= g.config.MaxGenerations {
		log.Printf("reached maximum generations limit (%d)", g.config.MaxGenerations)
		g.quit = true
	}
}

// restart clears and reseeds the board
func (g *game) restart(reason string) {
	log.Printf("restarting due to %s at generation %d", reason, g.board.Generation())
	g.board.Clear()
	populateBoard(g.board, g.config)
	g.stats.Reset()
	g.stagnantCount = 0
}

// render draws the board and status line
func (g *game) render() {
	g.renderer.Draw(g.board.Snapshot())
	g.renderer.DrawStatus(statusLine(g))
	g.renderer.Show()
}

func statusLine(g *game) string {
	w, h := g.board.Dimensions()
	state := "paused"
	if g.running {
		state = "running"
	}
	if g.stagnantCount > 0 {
		state += " (stagnant)"
	}
	population := g.board.Population()
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | %.1f gen/sec | %s",
		g.board.Generation(), population, float64(population)/float64(w*h)*100,
		g.stats.GenerationsPerSecond, state)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
