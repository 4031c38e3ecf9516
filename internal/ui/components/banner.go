package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"

	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// QuestionBanner shows the current prompt and its position in the game.
type QuestionBanner struct {
	width    int
	prompt   string
	number   int
	total    int
	category string
	hint     string
}

// NewQuestionBanner creates a new question banner.
func NewQuestionBanner() *QuestionBanner {
	return &QuestionBanner{}
}

// SetSize sets the outer width.
func (b *QuestionBanner) SetSize(width int) {
	b.width = width
}

// SetQuestion sets the prompt shown and its 1-based position.
func (b *QuestionBanner) SetQuestion(prompt, category string, number, total int) {
	b.prompt = prompt
	b.category = category
	b.number = number
	b.total = total
}

// SetHint shows a revealed answer below the prompt. Empty hides it.
func (b *QuestionBanner) SetHint(hint string) {
	b.hint = hint
}

// View renders the banner.
func (b *QuestionBanner) View() string {
	counter := fmt.Sprintf("Question %d/%d", b.number, b.total)
	if b.category != "" {
		counter += " · " + b.category
	}

	prompt := b.prompt
	style := styles.BannerStyle
	if b.width > 0 {
		// border and horizontal padding
		inner := max(10, b.width-6)
		prompt = wordwrap.WrapString(prompt, uint(inner))
		style = style.Width(b.width - 2)
	}

	parts := []string{
		styles.CounterStyle.Render(counter),
		styles.PromptStyle.Render(prompt),
	}
	if b.hint != "" {
		parts = append(parts, styles.WarningStyle.Render("Hint: ")+styles.AccentStyle.Render(b.hint))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
