package utils

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStatsObserve(t *testing.T) {
	s := NewStats()
	s.Observe(1, 50, 100, "a", 100*time.Millisecond)

	if s.Density != 50 {
		t.Errorf("Density = %v, want 50", s.Density)
	}
	if !approx(s.GenerationsPerSecond, 10) {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 50 {
		t.Errorf("AveragePopulation = %v, want 50", s.AveragePopulation)
	}

	s.Observe(2, 60, 100, "b", 0)
	if !approx(s.AveragePopulation, 51) {
		t.Errorf("AveragePopulation = %v, want 51", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 {
		t.Errorf("TotalGenerations = %d, want 2", s.TotalGenerations)
	}
}

func TestStatsIsStagnant(t *testing.T) {
	tests := []struct {
		name   string
		hashes []string
		want   bool
	}{
		{"too little history", []string{"a"}, false},
		{"still life", []string{"a", "b", "b"}, true},
		{"period two", []string{"a", "b", "a"}, true},
		{"period three", []string{"a", "b", "c", "a"}, true},
		{"period four", []string{"a", "b", "c", "d", "a"}, false},
		{"changing", []string{"a", "b", "c", "d", "e", "f"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			for i, h := range tt.hashes {
				s.Observe(i, 1, 1, h, time.Millisecond)
			}
			if got := s.IsStagnant(); got != tt.want {
				t.Errorf("IsStagnant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatsReset(t *testing.T) {
	s := NewStats()
	start := s.StartTime
	s.Observe(1, 5, 10, "a", time.Millisecond)
	s.Observe(2, 5, 10, "a", time.Millisecond)
	s.Reset()

	if s.IsStagnant() || s.AveragePopulation != 0 || s.TotalGenerations != 0 {
		t.Errorf("Reset() left state behind: %+v", s)
	}
	if !s.StartTime.Equal(start) {
		t.Error("Reset() should keep the start time")
	}
}
