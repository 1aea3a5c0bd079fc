package model

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

const statusRows = 1

var (
	deadColor  = tcell.NewHexColor(0x213b4a)
	gridColor  = tcell.NewHexColor(0x2c4655)
	liveColors = []tcell.Color{
		tcell.NewHexColor(0x2c7b55),
		tcell.NewHexColor(0x53b357),
		tcell.NewHexColor(0x7ada5a),
		tcell.NewHexColor(0x2d5e56),
		tcell.NewHexColor(0x8beb67),
	}
)

// TerminalRenderer draws grids on a tcell screen, repainting only the cells
// that changed since the previous frame. A cell picks a random shade when it
// is born and keeps it while alive.
type TerminalRenderer struct {
	screen    tcell.Screen
	cellWidth int
	rng       *rand.Rand
	last      *Grid
	shades    []tcell.Color
}

// NewTerminalRenderer renders each cell as cellWidth screen columns
func NewTerminalRenderer(screen tcell.Screen, cellWidth int, rng *rand.Rand) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		cellWidth: max(cellWidth, 1),
		rng:       rng,
	}
}

// Invalidate forces the next Draw to repaint every cell
func (r *TerminalRenderer) Invalidate() {
	r.last = nil
}

// Draw paints g. The renderer keeps g as its reference frame, so callers hand
// over a grid they no longer modify, such as Board.Snapshot.
func (r *TerminalRenderer) Draw(g *Grid) {
	full := r.last == nil || r.last.width != g.width || r.last.height != g.height
	if full {
		r.screen.Clear()
		r.shades = make([]tcell.Color, len(g.cells))
	}

	for y := range g.height {
		for x := range g.width {
			i := y*g.width + x
			if !full && r.last.cells[i] == g.cells[i] {
				continue
			}
			if g.cells[i] == 1 {
				r.shades[i] = liveColors[r.rng.Intn(len(liveColors))]
			}
			r.paint(x, y, g.cells[i] == 1, r.shades[i])
		}
	}
	r.last = g
}

func (r *TerminalRenderer) paint(x, y int, alive bool, shade tcell.Color) {
	style := tcell.StyleDefault.Foreground(gridColor).Background(deadColor)
	if alive {
		style = style.Background(shade)
	}
	for i := range r.cellWidth {
		r.screen.SetContent(x*r.cellWidth+i, y, ' ', nil, style)
	}
}

// DrawStatus writes a line of text below the grid
func (r *TerminalRenderer) DrawStatus(text string) {
	if r.last == nil {
		return
	}
	row := r.last.height
	width, _ := r.screen.Size()
	col := 0
	for _, c := range text {
		if col >= width {
			break
		}
		r.screen.SetContent(col, row, c, nil, tcell.StyleDefault)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}

// Show flushes pending changes to the terminal
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// CellAt maps a screen position to grid coordinates. ok is false outside the
// last drawn grid.
func (r *TerminalRenderer) CellAt(col, row int) (x, y int, ok bool) {
	if r.last == nil || col < 0 || row < 0 {
		return 0, 0, false
	}
	x, y = col/r.cellWidth, row
	if x >= r.last.width || y >= r.last.height {
		return 0, 0, false
	}
	return x, y, true
}

// ScreenSize returns the columns and rows needed to show a width x height
// grid with its status line
func (r *TerminalRenderer) ScreenSize(width, height int) (cols, rows int) {
	return width * r.cellWidth, height + statusRows
}
