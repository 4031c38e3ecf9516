package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// HelpText represents the help component
type HelpText struct {
	width       int
	height      int
	hintTrigger string
}

// NewHelp creates a new help component
func NewHelp(hintTrigger string) *HelpText {
	return &HelpText{hintTrigger: hintTrigger}
}

// SetSize sets the size of the help component
func (h *HelpText) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help screen
func (h *HelpText) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("How to Play"))
	b.WriteString("\n\n")
	b.WriteString("Type the command that does what the prompt asks.\n")
	b.WriteString("Answers are checked as you type; Enter checks at once.\n")
	b.WriteString("Type " + styles.AccentStyle.Render(h.hintTrigger) + " to reveal the answer (no point for that question).\n")

	b.WriteString(styles.HeaderStyle.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(h.formatShortcut("Enter", "Submit now"))
	b.WriteString(h.formatShortcut("Ctrl+U", "Clear input"))
	b.WriteString(h.formatShortcut("Ctrl+T", "Show hint"))
	b.WriteString(h.formatShortcut("F1", "Toggle this help"))
	b.WriteString(h.formatShortcut("Ctrl+C", "Quit"))

	b.WriteString(styles.HeaderStyle.Render("Commands"))
	b.WriteString("\n")
	b.WriteString(h.formatShortcut("h j k l", "Left, down, up, right"))
	b.WriteString(h.formatShortcut("0  $", "Start / end of line"))
	b.WriteString(h.formatShortcut("gg  G", "First / last line"))
	b.WriteString(h.formatShortcut("w  b", "Next / previous word"))
	b.WriteString(h.formatShortcut("x", "Delete character"))
	b.WriteString(h.formatShortcut("dw  cw", "Delete word"))
	b.WriteString(h.formatShortcut("dd  3dd", "Delete line(s)"))
	b.WriteString(h.formatShortcut("yy  p", "Yank line / paste below"))
	b.WriteString(h.formatShortcut("yyp", "Duplicate line"))

	dialog := styles.HelpStyle.Render(b.String())

	// Center the dialog
	if h.width > 0 {
		dialog = lipgloss.Place(
			h.width,
			h.height,
			lipgloss.Center,
			lipgloss.Center,
			dialog,
		)
	}

	return dialog
}

// formatShortcut formats a keyboard shortcut with its description
func (h *HelpText) formatShortcut(keys, description string) string {
	keyStyle := styles.HelpKeyStyle.
		Bold(true).
		Width(12).
		Align(lipgloss.Left)

	return keyStyle.Render(keys) + styles.HelpDescStyle.Render(description) + "\n"
}
