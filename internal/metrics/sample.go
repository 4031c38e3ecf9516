// Package metrics tracks per-session timing figures shown on the game-over
// screen and stored with each game result.
package metrics

import (
	"math"
	"time"
)

// Sample is a single measurement at a point in time.
type Sample struct {
	At    time.Time
	Value float64
}

// IsValid returns true if the sample has a timestamp and a finite value.
func (s Sample) IsValid() bool {
	if s.At.IsZero() {
		return false
	}
	if math.IsInf(s.Value, 0) || math.IsNaN(s.Value) {
		return false
	}
	return true
}

// NewSampleAt creates a sample with the given timestamp.
func NewSampleAt(at time.Time, value float64) Sample {
	return Sample{At: at, Value: value}
}
