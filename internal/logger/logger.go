// Package logger configures the process-wide structured logger. Output is JSON
// in a rotating file so it never draws over the TUI; recent warnings and errors
// are also kept in memory for the status bar.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Entry is a captured WARN or ERROR record.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// String formats the entry for a one-line display.
func (e Entry) String() string {
	return fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), e.Level.String(), e.Message)
}

type recentEntries struct {
	mu      sync.RWMutex
	entries []Entry
	head    int
	count   int

	warns  int
	errors int
}

func newRecentEntries(size int) *recentEntries {
	return &recentEntries{entries: make([]Entry, size)}
}

func (r *recentEntries) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.head] = e
	r.head = (r.head + 1) % len(r.entries)
	if r.count < len(r.entries) {
		r.count++
	}

	if e.Level >= slog.LevelError {
		r.errors++
	} else {
		r.warns++
	}
}

func (r *recentEntries) all() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := len(r.entries)
	out := make([]Entry, r.count)
	for i := range out {
		out[i] = r.entries[(r.head-r.count+i+size)%size]
	}
	return out
}

// captureHandler forwards to inner and keeps WARN+ records.
type captureHandler struct {
	inner  slog.Handler
	recent *recentEntries
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.recent.add(Entry{Time: r.Time, Level: r.Level, Message: r.Message})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{inner: h.inner.WithAttrs(attrs), recent: h.recent}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{inner: h.inner.WithGroup(name), recent: h.recent}
}

// Options configures Init.
type Options struct {
	Level slog.Level
	// Path is the log file. Empty means ~/.config/vimarcade/vimarcade.log.
	Path string
	// Writer replaces the rotating file when set.
	Writer io.Writer
	// Keep is how many WARN/ERROR entries stay in memory (default 100).
	Keep int
}

var (
	mu     sync.RWMutex
	log    *slog.Logger
	file   *lumberjack.Logger
	recent *recentEntries
	level  slog.Level = slog.LevelInfo
	path   string
)

// Init installs the global logger and makes it the slog default.
func Init(opts Options) error {
	var w io.Writer = opts.Writer
	var lj *lumberjack.Logger

	logPath := opts.Path
	if w == nil {
		if logPath == "" {
			logPath = defaultPath()
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		lj = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		w = lj
	}

	keep := opts.Keep
	if keep <= 0 {
		keep = 100
	}
	r := newRecentEntries(keep)
	l := slog.New(&captureHandler{
		inner:  slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}),
		recent: r,
	})

	mu.Lock()
	if file != nil {
		file.Close()
	}
	log, file, recent, level, path = l, lj, r, opts.Level, logPath
	mu.Unlock()

	slog.SetDefault(l)
	return nil
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".config", "vimarcade", "vimarcade.log")
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if log != nil {
		return log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Info logs an info message
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs a warning message
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs an error message
func Error(msg string, args ...any) { get().Error(msg, args...) }

// With returns a logger carrying extra attributes.
func With(args ...any) *slog.Logger {
	return get().With(args...)
}

// Path returns the active log file, or "" when logging to a custom writer.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return path
}

// DebugEnabled reports whether debug records are written.
func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return level <= slog.LevelDebug
}

// Counts returns how many warnings and errors were logged since the last
// ResetCounts.
func Counts() (warns, errs int) {
	mu.RLock()
	r := recent
	mu.RUnlock()
	if r == nil {
		return 0, 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.warns, r.errors
}

// ResetCounts zeroes the warning and error counters.
func ResetCounts() {
	mu.RLock()
	r := recent
	mu.RUnlock()
	if r == nil {
		return
	}
	r.mu.Lock()
	r.warns, r.errors = 0, 0
	r.mu.Unlock()
}

// Recent returns the retained WARN/ERROR entries, oldest first.
func Recent() []Entry {
	mu.RLock()
	r := recent
	mu.RUnlock()
	if r == nil {
		return nil
	}
	return r.all()
}
