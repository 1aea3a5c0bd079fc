package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 64, "height": 32, "h_line_indices": [1, 5], "seed": 99}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.Width != 64 || config.Height != 32 || config.Seed != 99 {
		t.Errorf("unexpected config: %+v", config)
	}
	if len(config.HLineIndices) != 2 || config.HLineIndices[1] != 5 {
		t.Errorf("HLineIndices = %v, want [1 5]", config.HLineIndices)
	}
	if config.VLines != DefaultConfig().VLines {
		t.Error("fields missing from the file should keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{width"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestRegisterFlags(t *testing.T) {
	config := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.RegisterFlags(fs)

	args := []string{
		"-width", "256", "-height", "64", "-cell-size", "1", "-delay", "16ms",
		"-random-cell", "64", "-h-line", "2", "-v-index", "3,4", "-v-index", "-1",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if config.Width != 256 || config.Height != 64 || config.CellWidth != 1 {
		t.Errorf("unexpected dimensions: %+v", config)
	}
	if config.FrameRate != 16*time.Millisecond {
		t.Errorf("FrameRate = %v, want 16ms", config.FrameRate)
	}
	if config.RandomCells != 64 || config.HLines != 2 || config.VLines != 1 {
		t.Errorf("unexpected seed counts: %+v", config)
	}
	if got := config.VLineIndices.String(); got != "3,4,-1" {
		t.Errorf("VLineIndices = %q, want 3,4,-1", got)
	}
}

func TestRegisterFlagsReplacesIndices(t *testing.T) {
	config := DefaultConfig()
	config.HLineIndices = IntList{1, 2}
	config.VLineIndices = IntList{7}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.RegisterFlags(fs)

	if err := fs.Parse([]string{"-h-index", "3", "-h-index", "5,6"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := config.HLineIndices.String(); got != "3,5,6" {
		t.Errorf("HLineIndices = %q, want 3,5,6", got)
	}
	if got := config.VLineIndices.String(); got != "7" {
		t.Errorf("VLineIndices = %q, want 7 untouched", got)
	}
}

func TestIntListRejectsGarbage(t *testing.T) {
	var l IntList
	if err := l.Set("1,x"); err == nil {
		t.Error("expected an error for a non-numeric index")
	}
}

func TestNormalize(t *testing.T) {
	config := Config{Width: -1, Height: 0, CellWidth: 0, FrameRate: 0, RandomCells: -3}
	config.Normalize()

	if config.CellWidth != 1 || config.FrameRate != time.Millisecond || config.RandomCells != 0 {
		t.Errorf("Normalize() = %+v", config)
	}
	if config.Width != -1 || config.Height != 0 {
		t.Error("Normalize() should leave grid dimensions untouched")
	}
}
