// Package game runs one timed play session: it feeds typed commands to the
// engine, checks them against the current question, keeps score and steps
// through the question list. It owns no timers; the caller reports elapsed
// time through Tick and decides when to call Advance.
package game

import (
	"errors"
	"strings"
	"time"

	"github.com/willibrandon/vimarcade/internal/engine"
	"github.com/willibrandon/vimarcade/internal/metrics"
	"github.com/willibrandon/vimarcade/internal/quiz"
)

// ErrNoQuestions is returned by Start when given an empty question list.
var ErrNoQuestions = errors.New("no questions to play")

// Phase is where the session is in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	// PhaseAdvancing follows a correct answer. The clock is paused and input
	// is ignored until Advance.
	PhaseAdvancing
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseAdvancing:
		return "advancing"
	case PhaseOver:
		return "over"
	default:
		return "idle"
	}
}

// Feedback is the reaction shown for the last input.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
	FeedbackHint
)

// Options configures a Session.
type Options struct {
	Duration       time.Duration
	HintTrigger    string
	SampleText     []string
	TimeoutPenalty bool
	// Register is shared with the caller, e.g. to mirror yanks elsewhere.
	// A fresh one is used when nil.
	Register *engine.Register
	// Now defaults to time.Now.
	Now func() time.Time
}

// Outcome describes what Submit did with one input.
type Outcome struct {
	// Ignored is set when the input was empty or arrived outside
	// PhasePlaying. Nothing else is filled in then.
	Ignored bool
	Hint    bool
	Correct bool
	Points  int
	Result  engine.Result
}

// Summary is the final tally of a session.
type Summary struct {
	Score        int
	Answered     int
	Correct      int
	Hints        int
	AvgResponse  time.Duration
	BestResponse time.Duration
	// Responses holds per-answer times in milliseconds, oldest first.
	Responses []float64
}

// Session is a single play-through. It is not safe for concurrent use; the
// TUI drives it from its update loop.
type Session struct {
	opts Options
	now  func() time.Time
	reg  *engine.Register

	questions []quiz.Question
	index     int
	buffer    engine.Buffer

	phase    Phase
	score    int
	timeLeft time.Duration
	feedback Feedback
	hint     string
	hintUsed bool
	last     string

	answered int
	correct  int
	hints    int

	asked     time.Time
	responses *metrics.ResponseTracker
	events    []Event
}

// NewSession creates an idle session.
func NewSession(opts Options) *Session {
	s := &Session{
		opts:      opts,
		now:       opts.Now,
		reg:       opts.Register,
		responses: metrics.NewResponseTracker(0),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.reg == nil {
		s.reg = engine.NewRegister()
	}
	if s.opts.HintTrigger == "" {
		s.opts.HintTrigger = "@@"
	}
	return s
}

// Start begins a new game over questions. Score, clock, register and counters
// are reset.
func (s *Session) Start(questions []quiz.Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	s.questions = questions
	s.score = 0
	s.timeLeft = s.opts.Duration
	s.answered, s.correct, s.hints = 0, 0, 0
	s.reg.Reset()
	s.responses.Reset()
	s.events = s.events[:0]
	s.phase = PhasePlaying
	s.load(0)
	return nil
}

func (s *Session) load(index int) {
	if index >= len(s.questions) {
		index = 0
	}
	s.index = index
	s.buffer = engine.NewBuffer(s.opts.SampleText)
	s.feedback = FeedbackNone
	s.hint = ""
	s.hintUsed = false
	s.last = ""
	s.asked = s.now()
	s.record(Event{Kind: EventQuestion, Question: s.questions[index].ID})
}

// Submit checks one typed input against the current question.
func (s *Session) Submit(input string) Outcome {
	typed := strings.TrimSpace(input)
	if s.phase != PhasePlaying || typed == "" {
		return Outcome{Ignored: true}
	}

	q := s.questions[s.index]

	if typed == strings.TrimSpace(s.opts.HintTrigger) {
		if !s.hintUsed {
			s.hints++
		}
		s.hintUsed = true
		s.hint = q.Hint()
		s.feedback = FeedbackHint
		s.record(Event{Kind: EventHint, Question: q.ID})
		return Outcome{Hint: true}
	}

	res := engine.ApplyKeys(s.buffer, typed, s.reg)
	s.buffer = res.Buffer
	s.last = res.Command
	s.answered++

	if !q.Accepts(typed, res) {
		s.feedback = FeedbackWrong
		s.record(Event{Kind: EventWrong, Question: q.ID, Input: typed, Command: res.Command})
		return Outcome{Result: res}
	}

	now := s.now()
	points := quiz.PointsFor(true, s.hintUsed, false)
	s.score += points
	s.correct++
	s.responses.Observe(now, now.Sub(s.asked))
	s.feedback = FeedbackCorrect
	s.hint = ""
	s.phase = PhaseAdvancing
	s.record(Event{Kind: EventCorrect, Question: q.ID, Input: typed, Command: res.Command, Points: points})
	return Outcome{Correct: true, Points: points, Result: res}
}

// Advance moves to the next question after a correct answer, wrapping to the
// first one after the last. It reports false when no advance was pending.
func (s *Session) Advance() bool {
	if s.phase != PhaseAdvancing {
		return false
	}
	s.phase = PhasePlaying
	s.load(s.index + 1)
	return true
}

// Tick subtracts elapsed from the clock. The clock does not run while a
// correct answer is on display. It returns true exactly once, on the tick
// that ends the game.
func (s *Session) Tick(elapsed time.Duration) bool {
	if s.phase != PhasePlaying || elapsed <= 0 {
		return false
	}

	s.timeLeft -= elapsed
	if s.timeLeft > 0 {
		return false
	}

	s.timeLeft = 0
	before := s.score
	if s.opts.TimeoutPenalty {
		s.score = max(0, s.score+quiz.PointsFor(false, s.hintUsed, true))
	}
	s.record(Event{Kind: EventTimeout, Question: s.questions[s.index].ID, Points: s.score - before})
	s.phase = PhaseOver
	return true
}

// ClearFeedback drops the current feedback if it is still f. Used when a
// flash timer expires after something newer may have replaced it.
func (s *Session) ClearFeedback(f Feedback) {
	if s.feedback == f {
		s.feedback = FeedbackNone
	}
}

// Summary returns the tally so far.
func (s *Session) Summary() Summary {
	return Summary{
		Score:        s.score,
		Answered:     s.answered,
		Correct:      s.correct,
		Hints:        s.hints,
		AvgResponse:  s.responses.Average(),
		BestResponse: s.responses.Best(),
		Responses:    s.responses.Values(),
	}
}

// Question returns the current question.
func (s *Session) Question() (quiz.Question, bool) {
	if len(s.questions) == 0 {
		return quiz.Question{}, false
	}
	return s.questions[s.index], true
}

// QuestionNumber is the 1-based position of the current question.
func (s *Session) QuestionNumber() int { return s.index + 1 }

// QuestionCount is the number of questions in this game.
func (s *Session) QuestionCount() int { return len(s.questions) }

func (s *Session) Buffer() engine.Buffer { return s.buffer }
func (s *Session) Register() *engine.Register { return s.reg }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Score() int { return s.score }
func (s *Session) TimeLeft() time.Duration { return s.timeLeft }
func (s *Session) Duration() time.Duration { return s.opts.Duration }
func (s *Session) Feedback() Feedback { return s.feedback }
func (s *Session) HintUsed() bool { return s.hintUsed }

// Hint returns the revealed answer, or "" when no hint is showing.
func (s *Session) Hint() string { return s.hint }

// LastCommand is the canonical form of the last applied command.
func (s *Session) LastCommand() string { return s.last }
