package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/game"
	"github.com/willibrandon/vimarcade/internal/storage"
	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// SaveState tracks the write of the finished game.
type SaveState int

const (
	SaveSkipped SaveState = iota
	SaveRunning
	SaveDone
	SaveFailed
)

// GameOverDialog shows the final score and the player's stored totals.
type GameOverDialog struct {
	width   int
	height  int
	visible bool

	player  string
	summary game.Summary
	record  storage.PlayerRecord
	state   SaveState
	saveErr string
	help    string

	spinner spinner.Model
}

// NewGameOverDialog creates a new game over dialog.
func NewGameOverDialog() *GameOverDialog {
	return &GameOverDialog{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.AccentStyle),
		),
	}
}

// Show displays the dialog for a finished game. When save is true the dialog
// waits for SetSaved or SetSaveError and the returned command animates the
// spinner until then.
func (d *GameOverDialog) Show(player string, summary game.Summary, save bool) tea.Cmd {
	d.player = player
	d.summary = summary
	d.record = storage.PlayerRecord{}
	d.saveErr = ""
	d.visible = true
	if !save {
		d.state = SaveSkipped
		return nil
	}
	d.state = SaveRunning
	return d.spinner.Tick
}

// SetSaved records the player's updated totals.
func (d *GameOverDialog) SetSaved(rec storage.PlayerRecord) {
	d.record = rec
	d.state = SaveDone
}

// SetSaveError shows why the game could not be saved.
func (d *GameOverDialog) SetSaveError(msg string) {
	d.saveErr = msg
	d.state = SaveFailed
}

// SetHelp sets the key hints line.
func (d *GameOverDialog) SetHelp(help string) {
	d.help = help
}

// State returns the save state.
func (d *GameOverDialog) State() SaveState {
	return d.state
}

// Hide hides the dialog.
func (d *GameOverDialog) Hide() {
	d.visible = false
}

// IsVisible returns whether the dialog is visible.
func (d *GameOverDialog) IsVisible() bool {
	return d.visible
}

// SetSize sets the dialog dimensions.
func (d *GameOverDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update advances the spinner while the save is running.
func (d *GameOverDialog) Update(msg tea.Msg) tea.Cmd {
	if d.state != SaveRunning {
		return nil
	}
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	d.spinner, cmd = d.spinner.Update(msg)
	return cmd
}

// View renders the game over dialog.
func (d *GameOverDialog) View() string {
	if !d.visible {
		return ""
	}

	s := d.summary
	var b strings.Builder

	b.WriteString(styles.DialogTitleStyle.Render("⏰ Time's up!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Final score: %s\n", styles.SuccessStyle.Bold(true).Render(fmt.Sprint(s.Score))))
	b.WriteString(fmt.Sprintf("Correct: %d of %d answers", s.Correct, s.Answered))
	if s.Hints > 0 {
		b.WriteString(fmt.Sprintf(", %d hint(s)", s.Hints))
	}
	b.WriteString("\n")
	if s.AvgResponse > 0 {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("Avg response %s · best %s",
			roundDuration(s.AvgResponse), roundDuration(s.BestResponse))))
		b.WriteString("\n")
	}

	if len(s.Responses) >= 2 {
		b.WriteString("\n")
		b.WriteString(ResponseChart.Plot(s.Responses, min(50, max(20, d.width/2))))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render("Pace: " + ResponseChart.Trend(s.Responses).String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.saveLine())
	b.WriteString("\n")

	if d.help != "" {
		b.WriteString("\n")
		b.WriteString(styles.FooterHintStyle.Render(d.help))
	}

	dialog := styles.DialogStyle.Render(b.String())
	if d.width > 0 && d.height > 0 {
		return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return dialog
}

func (d *GameOverDialog) saveLine() string {
	switch d.state {
	case SaveRunning:
		return d.spinner.View() + " Saving score for " + d.player + "…"
	case SaveDone:
		line := fmt.Sprintf("%s has played %d time(s) · high score %d",
			styles.AccentStyle.Render(d.record.Username), d.record.TimesPlayed, d.record.HighestScore)
		if d.summary.Score > 0 && d.summary.Score >= d.record.HighestScore {
			line += "  " + styles.SuccessStyle.Render("★ new best")
		}
		return line
	case SaveFailed:
		return styles.ErrorStyle.Render(d.saveErr)
	default:
		return styles.MutedStyle.Render("Score not saved")
	}
}

func roundDuration(d time.Duration) time.Duration {
	if d >= time.Second {
		return d.Round(100 * time.Millisecond)
	}
	return d.Round(time.Millisecond)
}
