package utils

import "time"

// Stats tracks a simulation run for the closing summary
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one displayed generation and how long it took
func (s *Stats) Update(population int, duration time.Duration) {
	s.TotalGenerations++
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	s.PeakPopulation = max(s.PeakPopulation, population)

	// cumulative mean over every generation shown
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(s.TotalGenerations)
}

// Runtime returns the time elapsed since the run started
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
