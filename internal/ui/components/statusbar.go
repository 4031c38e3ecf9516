package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/vimarcade/internal/logger"
	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

// StatusBar represents the status bar component
type StatusBar struct {
	width int

	player  string
	score   int
	correct int
	best    int

	// storage is the active store driver, "none" when not saving.
	storage string
	// storageErr is set when the store could not be opened.
	storageErr bool
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSize sets the width of the status bar
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetPlayer sets the player name and their stored high score.
func (s *StatusBar) SetPlayer(name string, best int) {
	s.player = name
	s.best = best
}

// SetScore sets the running score and correct answer count.
func (s *StatusBar) SetScore(score, correct int) {
	s.score = score
	s.correct = correct
}

// SetStorage sets the store driver shown and whether it failed.
func (s *StatusBar) SetStorage(driver string, failed bool) {
	s.storage = driver
	s.storageErr = failed
}

// View renders the status bar
func (s *StatusBar) View() string {
	player := s.player
	if player == "" {
		player = "guest"
	}

	sections := []string{
		styles.StatusTitleStyle.Render(player),
		"Score " + styles.StatusValueStyle.Render(fmt.Sprint(s.score)),
		fmt.Sprintf("Correct %d", s.correct),
	}
	if s.best > 0 {
		sections = append(sections, styles.MutedStyle.Render(fmt.Sprintf("Best %d", s.best)))
	}

	switch {
	case s.storageErr:
		sections = append(sections, styles.WarningStyle.Render("● not saving"))
	case s.storage != "":
		sections = append(sections, styles.MutedStyle.Render("● "+s.storage))
	}

	// Debug indicator (warning/error counts) - only shown in debug mode
	if logger.DebugEnabled() {
		warnCount, errCount := logger.Counts()
		var parts []string
		if warnCount > 0 {
			parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("⚠ %d", warnCount)))
		}
		if errCount > 0 {
			parts = append(parts, styles.ErrorStyle.Render(fmt.Sprintf("✕ %d", errCount)))
		}
		if len(parts) > 0 {
			sections = append(sections, strings.Join(parts, " "))
		}
	}

	statusLine := strings.Join(sections, " | ")

	// Pad to full width if needed
	if s.width > 0 {
		return lipgloss.NewStyle().
			Width(s.width).
			Render(statusLine)
	}
	return statusLine
}
