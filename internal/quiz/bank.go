package quiz

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultCatalog []byte

// catalogFile is the YAML layout of a question catalog.
type catalogFile struct {
	Version   int        `yaml:"version"`
	Questions []Question `yaml:"questions"`
}

// Bank is an immutable question catalog.
type Bank struct {
	questions []Question
	rng       *rand.Rand
}

// Option configures a Bank.
type Option func(*Bank)

// WithRand makes sampling use r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(b *Bank) {
		b.rng = r
	}
}

// ParseBank decodes a YAML catalog and validates every question.
func ParseBank(data []byte, opts ...Option) (*Bank, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse question catalog: %w", err)
	}
	return NewBank(file.Questions, opts...)
}

// NewBank builds a bank from questions. IDs must be unique.
func NewBank(questions []Question, opts ...Option) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question catalog is empty")
	}

	seen := make(map[string]bool, len(questions))
	b := &Bank{questions: make([]Question, 0, len(questions))}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		b.questions = append(b.questions, q.clone())
	}

	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// LoadBankFile reads a catalog from a YAML file.
func LoadBankFile(path string, opts ...Option) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question catalog: %w", err)
	}
	b, err := ParseBank(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

var defaultBank = sync.OnceValue(func() *Bank {
	b, err := ParseBank(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded question catalog: %v", err))
	}
	return b
})

// DefaultBank returns the built-in catalog.
func DefaultBank() *Bank {
	return defaultBank()
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns the catalog in file order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// Get looks a question up by ID.
func (b *Bank) Get(id string) (Question, bool) {
	for _, q := range b.questions {
		if q.ID == id {
			return q.clone(), true
		}
	}
	return Question{}, false
}

// ByCategory groups the catalog by category, keeping file order inside each
// group. Questions without a category are grouped under "edit".
func (b *Bank) ByCategory() map[Category][]Question {
	groups := make(map[Category][]Question)
	for _, q := range b.questions {
		c := q.Category
		if c == "" {
			c = CategoryEdit
		}
		groups[c] = append(groups[c], q.clone())
	}
	return groups
}

// PickRandom returns count questions drawn without replacement, in random
// order. A count of zero or less, or one larger than the catalog, returns the
// whole catalog shuffled.
func (b *Bank) PickRandom(count int) []Question {
	shuffled := b.Questions()
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if b.rng != nil {
		b.rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	if count <= 0 || count > len(shuffled) {
		return shuffled
	}
	return shuffled[:count]
}

// PickRandom samples from the built-in catalog. As with Bank.PickRandom, a
// count of zero or less means the whole catalog.
func PickRandom(count int) []Question {
	return DefaultBank().PickRandom(count)
}
