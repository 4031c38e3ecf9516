package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/game"
	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// FeedbackText is the message shown for each feedback state.
func FeedbackText(f game.Feedback, hinted bool) string {
	switch f {
	case game.FeedbackCorrect:
		if hinted {
			return "✓ Correct (no point after a hint)"
		}
		return "✓ Correct! +1"
	case game.FeedbackWrong:
		return "✗ Not quite, try again"
	case game.FeedbackHint:
		return "💡 Hint revealed"
	default:
		return ""
	}
}

// RenderFeedback renders the feedback line in the color of its state.
func RenderFeedback(f game.Feedback, hinted bool) string {
	text := FeedbackText(f, hinted)
	if text == "" {
		return " "
	}
	return lipgloss.NewStyle().
		Foreground(styles.FeedbackColor(f)).
		Bold(true).
		Render(text)
}
