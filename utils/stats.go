package utils

import "time"

const historySize = 5

// Stats tracks performance and population between frames
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	Density              float64
	StartTime            time.Time

	history []string // recent grid hashes for cycle detection
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Observe records one generation. cells is the board area, hash a digest of
// the cells and duration the time spent on the frame.
func (s *Stats) Observe(generation, population, cells int, hash string, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if cells > 0 {
		s.Density = float64(population) / float64(cells) * 100
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the latest hash repeats one of the three before
// it, which covers still lifes and period 2 and 3 oscillators
func (s *Stats) IsStagnant() bool {
	n := len(s.history)
	if n < 2 {
		return false
	}
	current := s.history[n-1]
	for i := n - 2; i >= max(0, n-4); i-- {
		if s.history[i] == current {
			return true
		}
	}
	return false
}

// Reset forgets history and averages, keeping the start time
func (s *Stats) Reset() {
	start := s.StartTime
	*s = Stats{StartTime: start}
}
