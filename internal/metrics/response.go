package metrics

import (
	"sync"
	"time"

	"github.com/VividCortex/ewma"
)

// ResponseTracker measures how long the player takes to answer each question.
// It keeps an exponentially weighted average plus the raw samples for the
// trend chart.
type ResponseTracker struct {
	mu      sync.Mutex
	avg     ewma.MovingAverage
	samples *Ring
	best    time.Duration
	count   int
}

// NewResponseTracker creates a tracker keeping up to capacity samples.
func NewResponseTracker(capacity int) *ResponseTracker {
	return &ResponseTracker{
		avg:     ewma.NewMovingAverage(),
		samples: NewRing(capacity),
	}
}

// Observe records one answer time taken at the given moment. Non-positive
// durations are ignored.
func (t *ResponseTracker) Observe(at time.Time, d time.Duration) {
	if d <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	ms := float64(d.Milliseconds())
	if ms == 0 {
		ms = 1
	}
	t.avg.Add(ms)
	t.samples.Push(NewSampleAt(at, ms))
	t.count++
	if t.best == 0 || d < t.best {
		t.best = d
	}
}

// Average returns the weighted average answer time.
func (t *ResponseTracker) Average() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Duration(t.avg.Value() * float64(time.Millisecond))
}

// Best returns the fastest answer seen, or 0 before any.
func (t *ResponseTracker) Best() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.best
}

// Count returns the number of recorded answers.
func (t *ResponseTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Values returns answer times in milliseconds, oldest first.
func (t *ResponseTracker) Values() []float64 {
	return t.samples.Values()
}

// Reset forgets all recorded answers.
func (t *ResponseTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.avg = ewma.NewMovingAverage()
	t.samples.Clear()
	t.best = 0
	t.count = 0
}
