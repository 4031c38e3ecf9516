package components

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/game"
	"github.com/willibrandon/vimarcade/internal/logger"
	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// inspectorLogLines is how many log warnings the inspector lists.
const inspectorLogLines = 5

// Inspector is the debug-mode overlay showing the live session state, the
// event journal of the current game and the latest log warnings.
type Inspector struct {
	viewport viewport.Model
	session  *game.Session
	width    int
	height   int
	visible  bool
}

// NewInspector creates a hidden inspector.
func NewInspector() *Inspector {
	return &Inspector{viewport: viewport.New(0, 0)}
}

// SetSession sets the session being inspected.
func (p *Inspector) SetSession(s *game.Session) {
	p.session = s
}

func (p *Inspector) panelWidth() int {
	return max(60, p.width*80/100)
}

// SetSize sets the screen dimensions.
func (p *Inspector) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = p.panelWidth() - 4
	// state block, rules and footer
	p.viewport.Height = max(5, height*70/100-12)
}

// Show shows the inspector, scrolled to the newest event.
func (p *Inspector) Show() {
	p.visible = true
	p.refresh()
	p.viewport.GotoBottom()
}

// Hide hides the inspector.
func (p *Inspector) Hide() {
	p.visible = false
}

// IsVisible returns whether the inspector is visible.
func (p *Inspector) IsVisible() bool {
	return p.visible
}

// Update handles keys while visible: esc or f2 closes, c clears the log
// counters, anything else scrolls.
func (p *Inspector) Update(msg tea.Msg) tea.Cmd {
	if !p.visible {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "f2":
			p.Hide()
			return nil
		case "c":
			logger.ResetCounts()
			return nil
		}
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// refresh rebuilds the journal and log sections.
func (p *Inspector) refresh() {
	var lines []string

	lines = append(lines, styles.HeaderStyle.Render("Events"))
	var events []game.Event
	if p.session != nil {
		events = p.session.Events()
	}
	if len(events) == 0 {
		lines = append(lines, styles.MutedStyle.Render("  nothing yet"))
	}
	for _, e := range events {
		lines = append(lines, "  "+eventStyle(e.Kind).Render(e.String()))
	}

	warns, errs := logger.Counts()
	lines = append(lines, "", styles.HeaderStyle.Render(fmt.Sprintf("Log (%d warnings, %d errors)", warns, errs)))
	recent := logger.Recent()
	if len(recent) == 0 {
		lines = append(lines, styles.MutedStyle.Render("  no warnings or errors"))
	}
	for _, e := range recent[max(0, len(recent)-inspectorLogLines):] {
		style := styles.WarningStyle
		if e.Level >= slog.LevelError {
			style = styles.ErrorStyle
		}
		lines = append(lines, "  "+style.Render(e.String()))
	}

	p.viewport.SetContent(strings.Join(lines, "\n"))
}

func eventStyle(k game.EventKind) lipgloss.Style {
	switch k {
	case game.EventCorrect:
		return styles.SuccessStyle
	case game.EventWrong:
		return styles.ErrorStyle
	case game.EventHint, game.EventTimeout:
		return styles.WarningStyle
	default:
		return styles.MutedStyle
	}
}

// stateLines summarises the session: question, phase, clock, cursor and
// register.
func (p *Inspector) stateLines() []string {
	s := p.session
	if s == nil || s.Phase() == game.PhaseIdle {
		return []string{styles.MutedStyle.Render("No game running")}
	}

	label := func(l string) string { return styles.StatusTitleStyle.Render(fmt.Sprintf("%-9s", l)) }

	q, _ := s.Question()
	buf := s.Buffer()
	cursor := fmt.Sprintf("row %d col %d", buf.Cursor.Row, buf.Cursor.Col)
	switch {
	case buf.AboveTop():
		cursor += " (above first line)"
	case buf.BelowBottom():
		cursor += " (below last line)"
	}
	register := styles.MutedStyle.Render("empty")
	if text, ok := s.Register().Line(); ok {
		register = fmt.Sprintf("%q", text)
	}
	last := s.LastCommand()
	if last == "" {
		last = "-"
	}

	return []string{
		label("Question") + fmt.Sprintf("%d/%d %s", s.QuestionNumber(), s.QuestionCount(), q.ID),
		label("Phase") + fmt.Sprintf("%s · %s left · score %d", s.Phase(), FormatClock(s.TimeLeft()), s.Score()),
		label("Cursor") + cursor,
		label("Register") + register,
		label("Last") + last,
	}
}

// View renders the inspector centered on screen.
func (p *Inspector) View() string {
	if !p.visible {
		return ""
	}
	p.refresh()

	width := p.panelWidth()
	rule := styles.MutedStyle.Render(strings.Repeat("─", width-4))

	parts := []string{styles.TitleStyle.Render("Inspector")}
	parts = append(parts, p.stateLines()...)
	parts = append(parts,
		rule,
		p.viewport.View(),
		rule,
		styles.FooterHintStyle.Render("esc/f2 close · c clear log counts · ↑/↓ scroll"),
	)

	panel := styles.HelpStyle.Padding(0, 1).Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if p.width > 0 && p.height > 0 {
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}
