package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/willibrandon/vimarcade/internal/storage"
	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

const nameColumnWidth = 20

// Leaderboard displays the top players in a table.
type Leaderboard struct {
	table     table.Model
	players   []storage.PlayerRecord
	highlight string
	width     int
	height    int
	visible   bool
	loading   bool
	err       string
	now       func() time.Time
}

// NewLeaderboard creates a new leaderboard.
func NewLeaderboard() *Leaderboard {
	t := table.New(
		table.WithColumns(leaderboardColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = styles.TableHeaderStyle
	s.Selected = styles.TableSelectedStyle
	t.SetStyles(s)

	return &Leaderboard{table: t, now: time.Now}
}

func leaderboardColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: nameColumnWidth},
		{Title: "Played", Width: 7},
		{Title: "Best", Width: 6},
		{Title: "Last played", Width: 16},
	}
}

// Show makes the leaderboard visible in its loading state. highlight is
// the current player's name.
func (l *Leaderboard) Show(highlight string) {
	l.highlight = highlight
	l.visible = true
	l.loading = true
	l.err = ""
}

// Hide hides the leaderboard.
func (l *Leaderboard) Hide() {
	l.visible = false
}

// IsVisible returns whether the leaderboard is visible.
func (l *Leaderboard) IsVisible() bool {
	return l.visible
}

// SetError shows a load failure instead of the table.
func (l *Leaderboard) SetError(msg string) {
	l.loading = false
	l.err = msg
}

// SetPlayers replaces the rows.
func (l *Leaderboard) SetPlayers(players []storage.PlayerRecord) {
	l.loading = false
	l.err = ""
	l.players = players

	rows := make([]table.Row, len(players))
	selected := 0
	for i, p := range players {
		name := runewidth.Truncate(p.Username, nameColumnWidth-1, "…")
		if p.Username == l.highlight {
			name = runewidth.Truncate("▶ "+p.Username, nameColumnWidth-1, "…")
			selected = i
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			name,
			humanize.Comma(int64(p.TimesPlayed)),
			fmt.Sprint(p.HighestScore),
			humanize.RelTime(p.LastPlayed, l.now(), "ago", "from now"),
		}
	}
	l.table.SetRows(rows)
	l.table.SetCursor(selected)
}

// Players returns the rows currently shown.
func (l *Leaderboard) Players() []storage.PlayerRecord {
	return l.players
}

// SetSize sets the dimensions of the leaderboard.
func (l *Leaderboard) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.table.SetHeight(max(3, min(height-8, len(l.players)+1)))
}

// Update handles messages for the table.
func (l *Leaderboard) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return cmd
}

// View renders the leaderboard.
func (l *Leaderboard) View() string {
	if !l.visible {
		return ""
	}

	var body string
	switch {
	case l.loading:
		body = styles.MutedStyle.Render("Loading scores…")
	case l.err != "":
		body = styles.ErrorStyle.Render(l.err)
	case len(l.players) == 0:
		body = styles.MutedStyle.Render("No games recorded yet. Be the first!")
	default:
		l.table.SetHeight(max(3, min(l.height-8, len(l.players)+1)))
		body = styles.TableBorderStyle.Render(l.table.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.DialogTitleStyle.Render("🏆 Leaderboard"),
		styles.MutedStyle.Render("ranked by games played, then high score"),
		"",
		body,
		"",
		styles.FooterHintStyle.Render("esc back · ↑/↓ scroll"),
	)

	dialog := styles.DialogStyle.Render(content)
	if l.width > 0 && l.height > 0 {
		return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}
