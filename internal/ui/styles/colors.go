// Package styles provides centralized Lipgloss styling for the vimarcade UI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/game"
)

// Color palette
var (
	// Feedback colors
	ColorCorrect = lipgloss.Color("10")  // Green
	ColorWrong   = lipgloss.Color("9")   // Red
	ColorHint    = lipgloss.Color("11")  // Yellow
	ColorTimeout = lipgloss.Color("208") // Orange

	// UI element colors
	ColorBorder  = lipgloss.Color("240") // Gray - all borders
	ColorAccent  = lipgloss.Color("6")   // Cyan - titles, highlights
	ColorMuted   = lipgloss.Color("8")   // Dark gray - secondary text
	ColorText    = lipgloss.Color("7")
	ColorSuccess = lipgloss.Color("10")
	ColorError   = lipgloss.Color("9")
	ColorWarning = lipgloss.Color("11")

	// Cursor cell in the buffer view
	ColorCursorFg = lipgloss.Color("0")
	ColorCursorBg = lipgloss.Color("14")

	// Selection colors
	ColorSelectedFg = lipgloss.Color("229") // Light yellow text
	ColorSelectedBg = lipgloss.Color("57")  // Purple background

	// Countdown gradient ends
	ColorTimerFull  = "#00D787"
	ColorTimerEmpty = "#FF5F5F"
)

// FeedbackColor returns the color used to report f.
func FeedbackColor(f game.Feedback) lipgloss.Color {
	switch f {
	case game.FeedbackCorrect:
		return ColorCorrect
	case game.FeedbackWrong:
		return ColorWrong
	case game.FeedbackHint:
		return ColorHint
	default:
		return ColorMuted
	}
}

// TimeLeftColor shifts from green to red as the clock runs down.
func TimeLeftColor(fraction float64) lipgloss.Color {
	switch {
	case fraction <= 0.15:
		return ColorWrong
	case fraction <= 0.4:
		return ColorHint
	default:
		return ColorCorrect
	}
}
