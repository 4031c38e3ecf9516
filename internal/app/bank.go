package app

import (
	"github.com/willibrandon/vimarcade/internal/config"
	"github.com/willibrandon/vimarcade/internal/quiz"
)

// LoadBank returns the question catalog named by game.questions_file, or the
// built-in catalog when none is set.
func LoadBank(cfg *config.Config) (*quiz.Bank, error) {
	if cfg.Game.QuestionsFile == "" {
		return quiz.DefaultBank(), nil
	}
	return quiz.LoadBankFile(cfg.Game.QuestionsFile)
}
