package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willibrandon/vimarcade/internal/app"
	"github.com/willibrandon/vimarcade/internal/logger"
	"github.com/willibrandon/vimarcade/internal/storage"
)

var errNotTerminal = errors.New("vimarcade needs an interactive terminal to play")

// newPlayCmd creates the play subcommand, which is also the root default.
func newPlayCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a timed game",
		Long: `Start a game in full-screen mode. Without --player (or player.username in
the config file) you are asked for a name first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(player)
		},
	}
	cmd.Flags().StringVarP(&player, "player", "p", "", "player name to record scores under")
	return cmd
}

func runPlay(player string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := setup()
	if err != nil {
		return err
	}
	if player != "" {
		name, err := storage.NormalizeUsername(player)
		if err != nil {
			return fmt.Errorf("--player: %w", err)
		}
		cfg.Player.Username = name
	}

	bank, err := app.LoadBank(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app.New(cfg, bank), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("program exited with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	// Cleanup
	if m, ok := finalModel.(app.Model); ok {
		m.Cleanup()
	} else if m, ok := finalModel.(*app.Model); ok {
		m.Cleanup()
	}
	return nil
}
