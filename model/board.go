package model

import (
	"math/rand"
	"time"
)

// Orientation selects rows or columns for line seeding
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Board owns the current generation of a toroidal grid along with the random
// source used for seeding. It is not safe for concurrent use; a single driver
// goroutine is expected to own it.
type Board struct {
	grid       *Grid
	rng        *rand.Rand
	stepper    *Stepper
	pool       *GridPool
	generation int
}

// BoardOption configures optional Board collaborators
type BoardOption func(*Board)

// WithStepper sets the stepper used by Advance
func WithStepper(s *Stepper) BoardOption {
	return func(b *Board) {
		b.stepper = s
	}
}

// WithPool recycles generation buffers through pool
func WithPool(pool *GridPool) BoardOption {
	return func(b *Board) {
		b.pool = pool
	}
}

// NewBoard creates a board with all cells dead. A nil rng is replaced by a
// time-seeded one; pass a seeded generator for reproducible seeding.
func NewBoard(width, height int, rng *rand.Rand, opts ...BoardOption) (*Board, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &Board{grid: grid, rng: rng}
	for _, opt := range opts {
		opt(b)
	}
	if b.stepper == nil {
		b.stepper = NewStepper(0)
	}
	return b, nil
}

// Dimensions returns the width and height of the board
func (b *Board) Dimensions() (width, height int) {
	return b.grid.GetWidth(), b.grid.GetHeight()
}

// Get reports whether the cell at (x, y) is alive. Coordinates wrap.
func (b *Board) Get(x, y int) bool {
	return b.grid.Get(x, y)
}

// Toggle flips the cell at (x, y). Coordinates wrap.
func (b *Board) Toggle(x, y int) {
	b.grid.Toggle(x, y)
}

// Generation returns the number of steps since creation or the last Clear
func (b *Board) Generation() int {
	return b.generation
}

// Population returns the number of living cells
func (b *Board) Population() int {
	return b.grid.CountLivingCells()
}

// Hash returns a digest of the current cells
func (b *Board) Hash() string {
	return b.grid.GetGridHash()
}

// Snapshot returns a copy of the current generation
func (b *Board) Snapshot() *Grid {
	return b.grid.Clone()
}

// Clear kills every cell and resets the generation counter
func (b *Board) Clear() {
	b.grid.Clear()
	b.generation = 0
}

// Advance replaces the current generation with the next one
func (b *Board) Advance() {
	next := b.stepper.Next(b.grid, b.pool)
	ReleaseGrid(b.grid, b.pool)
	b.grid = next
	b.generation++
}

// SeedRandom switches on k distinct cells picked uniformly at random, where k
// is count clamped to [0, width*height]. Cells that were already alive stay
// alive. It returns k.
func (b *Board) SeedRandom(count int) int {
	total := len(b.grid.cells)
	k := min(max(count, 0), total)
	if k == 0 {
		return 0
	}

	// partial Fisher-Yates over cell indices
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	for i := range k {
		j := i + b.rng.Intn(total-i)
		indices[i], indices[j] = indices[j], indices[i]
		b.grid.cells[indices[i]] = 1
	}
	return k
}

// SeedDensity switches on each cell independently with the given
// probability, clamped to [0, 1]. It returns how many dead cells came alive.
func (b *Board) SeedDensity(density float64) (born int) {
	density = min(max(density, 0), 1)
	for i, c := range b.grid.cells {
		if b.rng.Float64() < density && c == 0 {
			b.grid.cells[i] = 1
			born++
		}
	}
	return
}

// SeedLine switches on every cell of a row (Horizontal) or column (Vertical).
// The index wraps, and lines add to whatever is already alive.
func (b *Board) SeedLine(orientation Orientation, index int) {
	w, h := b.Dimensions()
	switch orientation {
	case Vertical:
		for y := range h {
			b.grid.Set(index, y, true)
		}
	default:
		for x := range w {
			b.grid.Set(x, index, true)
		}
	}
}

// SeedRandomLines seeds count distinct random lines of the given orientation,
// count clamped to [0, lines available]. It returns the chosen indices.
func (b *Board) SeedRandomLines(orientation Orientation, count int) []int {
	w, h := b.Dimensions()
	n := h
	if orientation == Vertical {
		n = w
	}

	k := min(max(count, 0), n)
	chosen := b.rng.Perm(n)[:k]
	for _, i := range chosen {
		b.SeedLine(orientation, i)
	}
	return chosen
}
