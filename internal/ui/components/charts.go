package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Chart describes one kind of history plot.
type Chart struct {
	Caption string
	Unit    string
	// LowerIsBetter flips what Trend calls an improvement.
	LowerIsBetter bool
	Height        int
	Color         lipgloss.Color
}

var (
	// ResponseChart plots milliseconds per correct answer.
	ResponseChart = Chart{
		Caption:       "response time per correct answer",
		Unit:          "ms",
		LowerIsBetter: true,
		Height:        5,
		Color:         styles.ColorAccent,
	}

	// ScoreChart plots final scores, oldest game first.
	ScoreChart = Chart{
		Caption: "score per game, oldest first",
		Unit:    "pts",
		Height:  5,
		Color:   styles.ColorSuccess,
	}
)

// Plot draws values as a multi-line chart width columns wide, with the
// range in the caption. Fewer than two values draw nothing.
func (c Chart) Plot(values []float64, width int) string {
	if len(values) < 2 {
		return ""
	}

	lo, hi := bounds(values)
	caption := fmt.Sprintf("%s (%s) · min %.0f · max %.0f", c.Caption, c.Unit, lo, hi)
	graph := asciigraph.Plot(values,
		asciigraph.Height(max(1, c.Height)),
		asciigraph.Width(max(10, width)),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
	return lipgloss.NewStyle().Foreground(c.Color).Render(graph)
}

// Spark draws the last width values as a one-line strip of blocks.
func (c Chart) Spark(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := bounds(values)
	top := float64(len(sparkBlocks) - 1)
	var sb strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * top))
		}
		sb.WriteRune(sparkBlocks[idx])
	}
	return sb.String()
}

// Trend compares the mean of the older half of values with the newer half.
// Changes under 10% (or under one unit) are steady.
func (c Chart) Trend(values []float64) Trend {
	if len(values) < 2 {
		return TrendSteady
	}
	half := len(values) / 2
	older, newer := mean(values[:half]), mean(values[len(values)-half:])

	diff := newer - older
	if c.LowerIsBetter {
		diff = -diff
	}
	threshold := max(1, math.Abs(older)*0.1)
	switch {
	case diff > threshold:
		return TrendImproving
	case diff < -threshold:
		return TrendSlipping
	default:
		return TrendSteady
	}
}

// Trend is the direction a player's numbers are heading.
type Trend int

const (
	TrendSteady Trend = iota
	TrendImproving
	TrendSlipping
)

func (t Trend) String() string {
	switch t {
	case TrendImproving:
		return "▲ improving"
	case TrendSlipping:
		return "▼ slipping"
	default:
		return "▶ steady"
	}
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
