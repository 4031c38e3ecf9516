package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willibrandon/vimarcade/internal/app"
)

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the question catalog",
		Long: `List every question with its first accepted answer, grouped by category.
Set game.questions_file to use your own catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			bank, err := app.LoadBank(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), questionTree(bank))
			return nil
		},
	}
}
