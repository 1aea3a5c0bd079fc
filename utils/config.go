package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	CellWidth           int           `json:"cell_width"`
	FrameRate           time.Duration `json:"frame_rate"`
	RandomCells         int           `json:"random_cells"`
	RandomDensity       float64       `json:"random_density"`
	HLines              int           `json:"h_lines"`
	VLines              int           `json:"v_lines"`
	HLineIndices        IntList       `json:"h_line_indices"`
	VLineIndices        IntList       `json:"v_line_indices"`
	Seed                int64         `json:"seed"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	StartPaused         bool          `json:"start_paused"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               16,
		Height:              16,
		CellWidth:           2,
		FrameRate:           32 * time.Millisecond,
		RandomCells:         4,
		HLines:              0,
		VLines:              1,
		UseMemoryPool:       true,
		StagnationThreshold: 5,
		StartPaused:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// RegisterFlags binds command-line flags to the config fields, using the
// current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Grid width in cells.")
	fs.IntVar(&c.Height, "height", c.Height, "Grid height in cells.")
	fs.IntVar(&c.CellWidth, "cell-size", c.CellWidth, "Cell width in terminal columns.")
	fs.DurationVar(&c.FrameRate, "delay", c.FrameRate, "Delay between frames.")
	fs.IntVar(&c.RandomCells, "random-cell", c.RandomCells, "Number of random live cells.")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "Probability of each cell starting alive.")
	fs.IntVar(&c.HLines, "h-line", c.HLines, "Number of random horizontal lines.")
	fs.IntVar(&c.VLines, "v-line", c.VLines, "Number of random vertical lines.")
	fs.Var(&replacingList{list: &c.HLineIndices}, "h-index", "Row index of a horizontal line (repeatable or comma separated).")
	fs.Var(&replacingList{list: &c.VLineIndices}, "v-index", "Column index of a vertical line (repeatable or comma separated).")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed, 0 picks one from the clock.")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Step workers, 0 uses one per CPU.")
	fs.BoolVar(&c.StartPaused, "paused", c.StartPaused, "Start with the simulation paused.")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "Reseed on extinction or stagnation.")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "Stop after this many generations, 0 for no limit.")
}

// Normalize clamps display settings to usable values. Grid dimensions are left
// alone so that invalid sizes are reported when the board is built.
func (c *Config) Normalize() {
	c.CellWidth = max(c.CellWidth, 1)
	c.FrameRate = max(c.FrameRate, time.Millisecond)
	c.RandomCells = max(c.RandomCells, 0)
	c.HLines = max(c.HLines, 0)
	c.VLines = max(c.VLines, 0)
	c.StagnationThreshold = max(c.StagnationThreshold, 1)
}

// IntList is a flag.Value collecting integers from repeated or comma
// separated flags
type IntList []int

func (l *IntList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *IntList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return errors.Wrapf(err, "[IntList] invalid index: %q", part)
		}
		*l = append(*l, v)
	}
	return nil
}

// replacingList discards the indices a list held before the first flag of a
// parse, so command-line indices replace those loaded from a file
type replacingList struct {
	list     *IntList
	replaced bool
}

func (r *replacingList) String() string {
	if r.list == nil {
		return ""
	}
	return r.list.String()
}

func (r *replacingList) Set(value string) error {
	if !r.replaced {
		*r.list = nil
		r.replaced = true
	}
	return r.list.Set(value)
}
