package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimulationScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(cols, rows)
	return s
}

func background(s tcell.Screen, col, row int) tcell.Color {
	_, _, style, _ := s.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTerminalRendererDraw(t *testing.T) {
	screen := newSimulationScreen(t, 20, 10)
	r := NewTerminalRenderer(screen, 2, rand.New(rand.NewSource(1)))

	g, _ := NewGrid(4, 3)
	g.Set(1, 2, true)
	r.Draw(g)
	r.Show()

	for _, col := range []int{2, 3} {
		if bg := background(screen, col, 2); !slices.Contains(liveColors, bg) {
			t.Errorf("column %d of live cell has background %v", col, bg)
		}
	}
	if bg := background(screen, 0, 0); bg != deadColor {
		t.Errorf("dead cell background = %v, want %v", bg, deadColor)
	}

	next := g.Clone()
	next.Toggle(1, 2)
	next.Toggle(3, 0)
	r.Draw(next)
	r.Show()
	if bg := background(screen, 2, 2); bg != deadColor {
		t.Error("cell that died should be repainted dead")
	}
	if bg := background(screen, 6, 0); !slices.Contains(liveColors, bg) {
		t.Error("cell that was born should be repainted alive")
	}
}

func TestTerminalRendererStatus(t *testing.T) {
	screen := newSimulationScreen(t, 12, 5)
	r := NewTerminalRenderer(screen, 1, rand.New(rand.NewSource(1)))

	r.DrawStatus("ignored")
	g, _ := NewGrid(3, 2)
	r.Draw(g)
	r.DrawStatus("Gen: 1")
	r.Show()

	for i, want := range "Gen: 1" {
		if got, _, _, _ := screen.GetContent(i, 2); got != want {
			t.Errorf("status column %d = %q, want %q", i, got, want)
		}
	}
}

func TestTerminalRendererCellAt(t *testing.T) {
	screen := newSimulationScreen(t, 20, 10)
	r := NewTerminalRenderer(screen, 3, rand.New(rand.NewSource(1)))

	if _, _, ok := r.CellAt(0, 0); ok {
		t.Error("CellAt before the first Draw should miss")
	}

	g, _ := NewGrid(4, 3)
	r.Draw(g)

	tests := []struct {
		col, row int
		x, y     int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{5, 1, 1, 1, true},
		{11, 2, 3, 2, true},
		{12, 0, 0, 0, false},
		{0, 3, 0, 0, false},
		{-1, 0, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := r.CellAt(tt.col, tt.row)
		if ok != tt.ok || (ok && (x != tt.x || y != tt.y)) {
			t.Errorf("CellAt(%d, %d) = (%d, %d, %v), want (%d, %d, %v)", tt.col, tt.row, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}

	if cols, rows := r.ScreenSize(4, 3); cols != 12 || rows != 4 {
		t.Errorf("ScreenSize(4, 3) = (%d, %d), want (12, 4)", cols, rows)
	}
}
