package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/rules"
)

// Stepper computes successive generations. The zero value uses one worker
// per CPU.
type Stepper struct {
	Workers int
}

// NewStepper returns a Stepper splitting rows across the given number of
// workers; workers <= 0 means runtime.NumCPU().
func NewStepper(workers int) *Stepper {
	return &Stepper{Workers: workers}
}

func (s *Stepper) workers() int {
	if s == nil || s.Workers <= 0 {
		return runtime.NumCPU()
	}
	return s.Workers
}

// CountNeighbors counts living cells among the eight toroidal neighbors of (x, y)
func CountNeighbors(g *Grid, x, y int) int {
	var (
		w     = g.width
		up    = ((y-1)%g.height + g.height) % g.height
		down  = (y + 1) % g.height
		left  = ((x-1)%w + w) % w
		right = (x + 1) % w
	)
	rowUp, row, rowDown := up*w, y*w, down*w

	return int(g.cells[rowUp+left]) + int(g.cells[rowUp+x]) + int(g.cells[rowUp+right]) +
		int(g.cells[row+left]) + int(g.cells[row+right]) +
		int(g.cells[rowDown+left]) + int(g.cells[rowDown+x]) + int(g.cells[rowDown+right])
}

// Next returns the generation following src. src is only read, so every cell
// sees the same snapshot regardless of how rows are split between workers.
// The result comes from pool when it is non-nil.
func (s *Stepper) Next(src *Grid, pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(src.width, src.height)
	} else {
		next = newGrid(src.width, src.height)
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(s.workers(), src.height)
		rowsPerWorker = (src.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.height)
		)
		if startRow >= src.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				row := y * src.width
				for x := range src.width {
					next.cells[row+x] = rules.Conway(src.cells[row+x], CountNeighbors(src, x, y))
				}
			}
			return nil
		})
	}

	// bands never fail
	_ = eg.Wait()

	return next
}
