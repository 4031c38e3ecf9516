// Package quiz holds the question catalog, random sampling and scoring rules.
package quiz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/willibrandon/vimarcade/internal/engine"
)

// Category groups questions for listing.
type Category string

const (
	CategoryMotion Category = "motion"
	CategoryEdit   Category = "edit"
	CategoryCount  Category = "count"
)

// Categories lists the known categories in display order.
var Categories = []Category{CategoryMotion, CategoryEdit, CategoryCount}

// Question is one prompt and the commands accepted as its answer.
type Question struct {
	ID       string   `yaml:"id"`
	Prompt   string   `yaml:"prompt"`
	Expected []string `yaml:"expected"`
	Category Category `yaml:"category"`
}

// Accepts reports whether the typed input answers q. raw is what the player
// typed and res is what ApplyKeys made of it. The trimmed input is matched
// first so that counted answers such as "3dd" are checked as typed; the
// canonical command is only consulted when no count above one was given, so
// "3dd" never passes for "dd".
func (q Question) Accepts(raw string, res engine.Result) bool {
	if slices.Contains(q.Expected, strings.TrimSpace(raw)) {
		return true
	}
	return res.Count == 1 && slices.Contains(q.Expected, res.Command)
}

// Hint returns the answer revealed when the player asks for help.
func (q Question) Hint() string {
	if len(q.Expected) == 0 {
		return ""
	}
	return q.Expected[0]
}

// Validate checks that the question is complete and every accepted answer is a
// command the interpreter supports.
func (q Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("question id cannot be empty")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("question %q: prompt cannot be empty", q.ID)
	}
	if len(q.Expected) == 0 {
		return fmt.Errorf("question %q: at least one expected answer is required", q.ID)
	}
	for _, answer := range q.Expected {
		if engine.Parse(answer).Kind == engine.KindUnknown {
			return fmt.Errorf("question %q: answer %q is not a supported command", q.ID, answer)
		}
	}
	if q.Category != "" && !slices.Contains(Categories, q.Category) {
		return fmt.Errorf("question %q: unknown category %q", q.ID, q.Category)
	}
	return nil
}

func (q Question) clone() Question {
	q.Expected = slices.Clone(q.Expected)
	return q
}
