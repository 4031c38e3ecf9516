package engine

// Register is the single unnamed yank slot. One Register lives for a whole play
// session and is shared by every ApplyKeys call in it; it is not safe for
// concurrent use.
type Register struct {
	line   string
	set    bool
	onYank func(string)
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{}
}

// OnYank installs a callback run after every yank, e.g. to mirror the register
// to the system clipboard. Reset keeps the callback.
func (r *Register) OnYank(fn func(line string)) {
	r.onYank = fn
}

// Yank stores line, replacing anything yanked before.
func (r *Register) Yank(line string) {
	r.line = line
	r.set = true
	if r.onYank != nil {
		r.onYank(line)
	}
}

// Line returns the stored line and whether anything was yanked yet.
func (r *Register) Line() (string, bool) {
	if r == nil {
		return "", false
	}
	return r.line, r.set
}

// Reset empties the register. Called when a new session starts.
func (r *Register) Reset() {
	r.line = ""
	r.set = false
}
