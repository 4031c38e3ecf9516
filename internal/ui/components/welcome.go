package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/storage"
	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// Welcome asks for a player name before the first game.
type Welcome struct {
	input  textinput.Model
	width  int
	height int
	err    string
}

// NewWelcome creates the welcome screen, prefilled with name.
func NewWelcome(name string) *Welcome {
	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = storage.MaxUsernameLength
	input.Width = storage.MaxUsernameLength
	input.Prompt = "› "
	input.PromptStyle = styles.InputPromptStyle
	input.SetValue(name)
	input.Focus()
	return &Welcome{input: input}
}

// SetSize sets the screen dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// Update handles input. On Enter with a valid name it returns the normalized
// name and true.
func (w *Welcome) Update(msg tea.Msg) (string, bool, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		name, err := storage.NormalizeUsername(w.input.Value())
		if err != nil {
			w.err = "Please enter a name (up to 32 characters)."
			return "", false, nil
		}
		w.err = ""
		return name, true, nil
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return "", false, cmd
}

// Value returns the text typed so far.
func (w *Welcome) Value() string {
	return w.input.Value()
}

// View renders the welcome screen.
func (w *Welcome) View() string {
	parts := []string{
		styles.DialogTitleStyle.Render("⌨  vim arcade"),
		"",
		"Practice vim commands against the clock.",
		"Each correct answer scores a point.",
		"",
		"Who's playing?",
		w.input.View(),
	}
	if w.err != "" {
		parts = append(parts, styles.ErrorStyle.Render(w.err))
	}
	parts = append(parts, "", styles.FooterHintStyle.Render("enter start · ctrl+c quit"))

	dialog := styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if w.width > 0 && w.height > 0 {
		return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}
