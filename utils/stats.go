package utils

import (
	"fmt"
	"time"
)

// Stats tracks session throughput and population for the status line
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation that took duration since the previous one
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average, seeded with the first sample
	if s.TotalGenerations <= 1 || s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns how long the session has been running
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

func (s *Stats) String() string {
	return fmt.Sprintf("%.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		s.GenerationsPerSecond, s.AveragePopulation, s.Runtime().Seconds())
}
