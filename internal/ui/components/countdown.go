package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// Countdown shows the time left as a shrinking bar.
type Countdown struct {
	width  int
	bar    progress.Model
	left   time.Duration
	total  time.Duration
	paused bool
}

// NewCountdown creates a countdown bar.
func NewCountdown() *Countdown {
	return &Countdown{
		bar: progress.New(
			progress.WithScaledGradient(styles.ColorTimerEmpty, styles.ColorTimerFull),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

// SetSize sets the total width including the time label.
func (c *Countdown) SetSize(width int) {
	c.width = width
	c.bar.Width = max(10, width-12)
}

// SetTime sets the remaining and total time.
func (c *Countdown) SetTime(left, total time.Duration) {
	c.left = max(0, left)
	c.total = total
}

// SetPaused marks the clock as stopped while a correct answer is shown.
func (c *Countdown) SetPaused(paused bool) {
	c.paused = paused
}

// Fraction is the share of time remaining, in [0, 1].
func (c *Countdown) Fraction() float64 {
	if c.total <= 0 {
		return 0
	}
	return min(1, float64(c.left)/float64(c.total))
}

// View renders the bar followed by the remaining seconds.
func (c *Countdown) View() string {
	frac := c.Fraction()
	label := lipgloss.NewStyle().
		Foreground(styles.TimeLeftColor(frac)).
		Bold(true).
		Render(FormatClock(c.left))
	if c.paused {
		label += styles.MutedStyle.Render(" ⏸")
	}
	return c.bar.ViewAs(frac) + " " + label
}

// FormatClock renders d as m:ss, rounding up so 0:00 only shows at the end.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
