package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/rules"
)

// ErrInvalidDimensions is returned when a grid or board is created with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Grid is a fixed-size toroidal field of cells stored row-major.
// Every cell is exactly rules.Dead or rules.Alive.
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// NewGrid creates a grid with every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] width: %d, height: %d", width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid to new dimensions and kills every cell.
// Dimensions must already be validated by the caller.
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	if cap(g.cells) < width*height {
		g.cells = make([]uint8, width*height)
		return
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear kills all cells
func (g *Grid) Clear() {
	clear(g.cells)
}

// wrap maps any coordinate pair onto the torus
func (g *Grid) wrap(x, y int) (int, int) {
	x %= g.width
	if x < 0 {
		x += g.width
	}
	y %= g.height
	if y < 0 {
		y += g.height
	}
	return x, y
}

func (g *Grid) index(x, y int) int {
	x, y = g.wrap(x, y)
	return y*g.width + x
}

// Set sets a cell to alive (true) or dead (false). Coordinates wrap.
func (g *Grid) Set(x, y int, alive bool) {
	if alive {
		g.cells[g.index(x, y)] = rules.Alive
	} else {
		g.cells[g.index(x, y)] = rules.Dead
	}
}

// Get returns the state of a cell. Coordinates wrap.
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.index(x, y)] == rules.Alive
}

// Toggle flips a cell between alive and dead. Coordinates wrap.
func (g *Grid) Toggle(x, y int) {
	i := g.index(x, y)
	g.cells[i] = rules.Alive - g.cells[i]
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.width, g.height)
	copy(c.cells, g.cells)
	return c
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	h.Write(g.cells)
	return fmt.Sprintf("%x", h.Sum(nil))
}
