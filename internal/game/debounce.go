package game

// Debouncer hands out generation numbers so that only the latest of several
// scheduled callbacks acts. Each keystroke calls Bump and schedules a check
// carrying the returned value; when the check fires it is dropped unless
// Current still matches.
type Debouncer struct {
	gen uint64
}

// Bump invalidates every outstanding generation and returns a new one.
func (d *Debouncer) Bump() uint64 {
	d.gen++
	return d.gen
}

// Current reports whether gen is the latest generation.
func (d *Debouncer) Current(gen uint64) bool {
	return gen == d.gen
}

// Cancel invalidates every outstanding generation.
func (d *Debouncer) Cancel() {
	d.gen++
}
