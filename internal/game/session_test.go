package game

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/willibrandon/vimarcade/internal/quiz"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time      { return c.t }
func (c *fakeClock) Add(d time.Duration) { c.t = c.t.Add(d) }

var testQuestions = []quiz.Question{
	{ID: "del-line", Prompt: "Delete the current line", Expected: []string{"dd", "1dd"}},
	{ID: "yank-paste", Prompt: "Duplicate the current line", Expected: []string{"yy p", "yyp"}},
	{ID: "move-end", Prompt: "Move to the end of the current line", Expected: []string{"$"}},
}

var sample = []string{"first line", "second line", "third line"}

func newTestSession(t *testing.T, clock *fakeClock, mutate ...func(*Options)) *Session {
	t.Helper()
	opts := Options{
		Duration:    60 * time.Second,
		HintTrigger: "@@",
		SampleText:  sample,
		Now:         clock.Now,
	}
	for _, m := range mutate {
		m(&opts)
	}
	s := NewSession(opts)
	if err := s.Start(testQuestions); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestSession_Start(t *testing.T) {
	s := NewSession(Options{Duration: time.Minute})
	if s.Phase() != PhaseIdle {
		t.Errorf("new session phase = %v, want idle", s.Phase())
	}
	if err := s.Start(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Start(nil) = %v, want ErrNoQuestions", err)
	}

	s = newTestSession(t, newFakeClock())
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want playing", s.Phase())
	}
	if s.TimeLeft() != 60*time.Second {
		t.Errorf("TimeLeft() = %v", s.TimeLeft())
	}
	q, ok := s.Question()
	if !ok || q.ID != "del-line" {
		t.Errorf("Question() = %v, %v", q.ID, ok)
	}
	if !slices.Equal(s.Buffer().Lines, sample) {
		t.Errorf("Buffer() = %q", s.Buffer().Lines)
	}
	if s.QuestionNumber() != 1 || s.QuestionCount() != 3 {
		t.Errorf("position = %d/%d", s.QuestionNumber(), s.QuestionCount())
	}
}

func TestSession_CorrectAnswer(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, clock)

	clock.Add(1500 * time.Millisecond)
	out := s.Submit(" dd ")
	if !out.Correct || out.Points != 1 {
		t.Fatalf("Submit(dd) = %+v, want correct for 1 point", out)
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, want 1", s.Score())
	}
	if s.Phase() != PhaseAdvancing {
		t.Errorf("phase = %v, want advancing", s.Phase())
	}
	if s.Feedback() != FeedbackCorrect {
		t.Errorf("Feedback() = %v, want correct", s.Feedback())
	}
	if !slices.Equal(s.Buffer().Lines, sample[1:]) {
		t.Errorf("command not applied, buffer = %q", s.Buffer().Lines)
	}
	if s.LastCommand() != "dd" {
		t.Errorf("LastCommand() = %q", s.LastCommand())
	}

	// Input and clock are frozen while the answer is on display.
	if out := s.Submit("dd"); !out.Ignored {
		t.Error("input during advance should be ignored")
	}
	if s.Tick(10 * time.Second) {
		t.Error("Tick during advance should not end the game")
	}
	if s.TimeLeft() != 60*time.Second {
		t.Errorf("clock ran while paused: %v", s.TimeLeft())
	}

	if !s.Advance() {
		t.Fatal("Advance() = false")
	}
	if s.Advance() {
		t.Error("second Advance() should be a no-op")
	}
	if q, _ := s.Question(); q.ID != "yank-paste" {
		t.Errorf("next question = %q", q.ID)
	}
	if !slices.Equal(s.Buffer().Lines, sample) {
		t.Errorf("buffer not reset for next question: %q", s.Buffer().Lines)
	}
	if s.Feedback() != FeedbackNone {
		t.Errorf("feedback not cleared: %v", s.Feedback())
	}

	sum := s.Summary()
	if sum.AvgResponse != 1500*time.Millisecond || sum.BestResponse != 1500*time.Millisecond {
		t.Errorf("response times = %v / %v", sum.AvgResponse, sum.BestResponse)
	}
}

func TestSession_WrongAnswer(t *testing.T) {
	s := newTestSession(t, newFakeClock())

	out := s.Submit("j")
	if out.Correct || out.Ignored || out.Hint {
		t.Fatalf("Submit(j) = %+v, want plain wrong", out)
	}
	if s.Feedback() != FeedbackWrong {
		t.Errorf("Feedback() = %v, want wrong", s.Feedback())
	}
	if s.Buffer().Cursor.Row != 1 {
		t.Errorf("wrong answers still apply, cursor = %+v", s.Buffer().Cursor)
	}
	if s.Phase() != PhasePlaying || s.Score() != 0 {
		t.Errorf("phase %v score %d after wrong answer", s.Phase(), s.Score())
	}

	// The buffer carries over between attempts at the same question.
	s.Submit("dd")
	if !slices.Equal(s.Buffer().Lines, []string{"first line", "third line"}) {
		t.Errorf("buffer = %q", s.Buffer().Lines)
	}

	sum := s.Summary()
	if sum.Answered != 2 || sum.Correct != 1 {
		t.Errorf("Summary() = %+v", sum)
	}
}

func TestSession_CountedAnswerIsNotSingle(t *testing.T) {
	s := newTestSession(t, newFakeClock())
	if out := s.Submit("3dd"); out.Correct {
		t.Error("3dd must not answer \"Delete the current line\"")
	}
}

func TestSession_Hint(t *testing.T) {
	s := newTestSession(t, newFakeClock())

	out := s.Submit("@@")
	if !out.Hint {
		t.Fatalf("Submit(@@) = %+v, want hint", out)
	}
	if s.Hint() != "dd" {
		t.Errorf("Hint() = %q, want dd", s.Hint())
	}
	if !s.HintUsed() || s.Feedback() != FeedbackHint {
		t.Error("hint state not recorded")
	}
	if !slices.Equal(s.Buffer().Lines, sample) {
		t.Error("hint trigger must not reach the buffer")
	}

	s.Submit("@@")
	s.ClearFeedback(FeedbackHint)
	if s.Feedback() != FeedbackNone {
		t.Errorf("ClearFeedback did not clear hint flash")
	}
	if s.Hint() != "dd" {
		t.Error("hint text should stay visible after the flash")
	}

	out = s.Submit("dd")
	if !out.Correct || out.Points != 0 {
		t.Errorf("hinted correct answer = %+v, want correct for 0 points", out)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, want 0", s.Score())
	}

	s.Advance()
	if s.HintUsed() || s.Hint() != "" {
		t.Error("hint state should reset on the next question")
	}
	if got := s.Summary().Hints; got != 1 {
		t.Errorf("Summary().Hints = %d, want 1", got)
	}
}

func TestSession_ClearFeedbackKeepsNewer(t *testing.T) {
	s := newTestSession(t, newFakeClock())
	s.Submit("@@")
	s.Submit("j")
	s.ClearFeedback(FeedbackHint)
	if s.Feedback() != FeedbackWrong {
		t.Errorf("stale hint flash cleared newer feedback: %v", s.Feedback())
	}
}

func TestSession_EmptyInputIgnored(t *testing.T) {
	s := newTestSession(t, newFakeClock())
	if out := s.Submit("   "); !out.Ignored {
		t.Error("blank input should be ignored")
	}
	if s.Summary().Answered != 0 {
		t.Error("blank input counted as an answer")
	}
}

func TestSession_RegisterSurvivesQuestionsButNotGames(t *testing.T) {
	s := newTestSession(t, newFakeClock())

	s.Submit("yy")
	s.Submit("dd")
	s.Advance()

	if line, ok := s.Register().Line(); !ok || line != "first line" {
		t.Fatalf("register = %q (%v), want \"first line\"", line, ok)
	}

	s.Submit("p")
	if got := s.Buffer().Lines[1]; got != "first line" {
		t.Errorf("paste after advance = %q", got)
	}

	if err := s.Start(testQuestions); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, ok := s.Register().Line(); ok {
		t.Error("register should be empty in a new game")
	}
}

func TestSession_WrapsAround(t *testing.T) {
	s := newTestSession(t, newFakeClock())
	answers := []string{"dd", "yyp", "$", "1dd"}
	wantIDs := []string{"yank-paste", "move-end", "del-line", "yank-paste"}

	for i, a := range answers {
		if out := s.Submit(a); !out.Correct {
			t.Fatalf("answer %q rejected", a)
		}
		s.Advance()
		if q, _ := s.Question(); q.ID != wantIDs[i] {
			t.Errorf("after %q question = %q, want %q", a, q.ID, wantIDs[i])
		}
	}
	if s.Score() != 4 {
		t.Errorf("Score() = %d, want 4", s.Score())
	}
}

func TestSession_Timeout(t *testing.T) {
	s := newTestSession(t, newFakeClock(), func(o *Options) { o.Duration = 3 * time.Second })

	if s.Tick(time.Second) || s.Tick(time.Second) {
		t.Fatal("game ended early")
	}
	if !s.Tick(time.Second) {
		t.Fatal("game should end when the clock reaches zero")
	}
	if s.Phase() != PhaseOver || s.TimeLeft() != 0 {
		t.Errorf("phase %v time %v", s.Phase(), s.TimeLeft())
	}
	if s.Tick(time.Second) {
		t.Error("game over reported twice")
	}
	if out := s.Submit("dd"); !out.Ignored {
		t.Error("input after game over should be ignored")
	}
	if s.Advance() {
		t.Error("Advance after game over")
	}
}

func TestSession_TimeoutPenalty(t *testing.T) {
	tests := []struct {
		name    string
		penalty bool
		answers []string
		want    int
	}{
		{"off", false, []string{"dd"}, 1},
		{"on", true, []string{"dd"}, 0},
		{"never below zero", true, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, newFakeClock(), func(o *Options) {
				o.Duration = 5 * time.Second
				o.TimeoutPenalty = tt.penalty
			})
			for _, a := range tt.answers {
				s.Submit(a)
				s.Advance()
			}
			s.Tick(time.Minute)
			if s.Score() != tt.want {
				t.Errorf("Score() = %d, want %d", s.Score(), tt.want)
			}
		})
	}
}

func TestDebouncer(t *testing.T) {
	var d Debouncer
	first := d.Bump()
	second := d.Bump()

	if d.Current(first) {
		t.Error("older generation reported current")
	}
	if !d.Current(second) {
		t.Error("latest generation not current")
	}

	d.Cancel()
	if d.Current(second) {
		t.Error("Cancel should invalidate the latest generation")
	}
}

func TestSession_Events(t *testing.T) {
	s := newTestSession(t, newFakeClock())

	s.Tick(5 * time.Second)
	s.Submit("dw")
	s.Submit("@@")
	s.Submit("dd")
	s.Advance()
	s.Tick(55 * time.Second)

	var kinds []EventKind
	for _, e := range s.Events() {
		kinds = append(kinds, e.Kind)
	}
	want := []EventKind{EventQuestion, EventWrong, EventHint, EventCorrect, EventQuestion, EventTimeout}
	if !slices.Equal(kinds, want) {
		t.Fatalf("event kinds = %v, want %v", kinds, want)
	}

	events := s.Events()
	if got := events[1].String(); got != `0:05 wrong    del-line  "dw" -> dw` {
		t.Errorf("wrong event = %q", got)
	}
	if events[3].Points != 0 {
		t.Errorf("hinted answer scored %d", events[3].Points)
	}
	if events[4].Question != "yank-paste" || events[4].At != 5*time.Second {
		t.Errorf("second question event = %+v", events[4])
	}
	if events[5].At != time.Minute {
		t.Errorf("timeout at %v, want 1m", events[5].At)
	}

	if err := s.Start(testQuestions); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if n := len(s.Events()); n != 1 {
		t.Errorf("restart kept %d events, want 1", n)
	}
}
