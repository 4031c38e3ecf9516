package metrics

import "sync"

// DefaultRingCapacity is the default maximum number of samples kept.
const DefaultRingCapacity = 256

// Ring is a fixed-size ring buffer of samples.
// It is thread-safe and evicts the oldest sample when full.
type Ring struct {
	data     []Sample
	capacity int
	head     int // Next write position
	size     int
	mu       sync.RWMutex
}

// NewRing creates a ring holding at most capacity samples.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultRingCapacity
	}
	return &Ring{
		data:     make([]Sample, capacity),
		capacity: capacity,
	}
}

// Push adds a sample, evicting the oldest if at capacity. Invalid samples are
// dropped.
func (r *Ring) Push(s Sample) {
	if !s.IsValid() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[r.head] = s
	r.head = (r.head + 1) % r.capacity
	if r.size < r.capacity {
		r.size++
	}
}

// Recent returns the n most recent samples in chronological order.
func (r *Ring) Recent(n int) []Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 || r.size == 0 {
		return nil
	}
	n = min(n, r.size)

	out := make([]Sample, n)
	start := (r.head - n + r.capacity) % r.capacity
	for i := 0; i < n; i++ {
		out[i] = r.data[(start+i)%r.capacity]
	}
	return out
}

// Values returns every value in chronological order, ready for asciigraph.
func (r *Ring) Values() []float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.size == 0 {
		return nil
	}

	out := make([]float64, r.size)
	oldest := (r.head - r.size + r.capacity) % r.capacity
	for i := 0; i < r.size; i++ {
		out[i] = r.data[(oldest+i)%r.capacity].Value
	}
	return out
}

// Latest returns the most recent sample, or false when empty.
func (r *Ring) Latest() (Sample, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.size == 0 {
		return Sample{}, false
	}
	return r.data[(r.head-1+r.capacity)%r.capacity], true
}

// Len returns the number of samples held.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

// Cap returns the capacity of the ring.
func (r *Ring) Cap() int {
	return r.capacity
}

// Clear removes all samples.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.head = 0
	r.size = 0
	clear(r.data)
}
