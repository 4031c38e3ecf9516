package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/willibrandon/vimarcade/internal/quiz"
	"github.com/willibrandon/vimarcade/internal/storage"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	pterm.DisableColor()
	os.Exit(m.Run())
}

var now = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"vimmer", 20, "vimmer"},
		{"averyveryverylongplayername", 10, "averyvery…"},
		{"日本語のなまえ", 6, "日本…"},
	}
	for _, tt := range tests {
		if got := truncateName(tt.name, tt.width); got != tt.want {
			t.Errorf("truncateName(%q, %d) = %q, want %q", tt.name, tt.width, got, tt.want)
		}
	}
}

func TestFormatWhen(t *testing.T) {
	if got := formatWhen(time.Time{}, now); got != "never" {
		t.Errorf("zero time = %q, want never", got)
	}
	if got := formatWhen(now.Add(-3*time.Hour), now); got != "3 hours ago" {
		t.Errorf("got %q, want 3 hours ago", got)
	}
}

func TestLeaderboardRows(t *testing.T) {
	players := []storage.PlayerRecord{
		{Username: "alice", TimesPlayed: 1200, HighestScore: 9, LastPlayed: now.Add(-time.Minute)},
		{Username: "bob", TimesPlayed: 3, HighestScore: 12, LastPlayed: now.Add(-48 * time.Hour)},
	}

	rows := leaderboardRows(players, now)
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Player" {
		t.Errorf("header = %v", rows[0])
	}
	if got := rows[1]; got[0] != "1" || got[1] != "alice" || got[2] != "1,200" {
		t.Errorf("first row = %v", got)
	}
	if got := rows[2][4]; got != "2 days ago" {
		t.Errorf("last played = %q", got)
	}

	out, err := renderLeaderboard(players, now)
	if err != nil {
		t.Fatalf("renderLeaderboard failed: %v", err)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "bob") {
		t.Errorf("table missing players:\n%s", out)
	}
}

func TestScoreHistory(t *testing.T) {
	results := []storage.GameResult{{Score: 5}, {Score: 3}, {Score: 1}}
	got := scoreHistory(results)
	want := []float64{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scoreHistory = %v, want %v", got, want)
		}
	}
}

func TestRenderPlayer(t *testing.T) {
	rec := storage.PlayerRecord{
		Username:     "vimmer",
		TimesPlayed:  3,
		HighestScore: 7,
		CreatedAt:    now.Add(-72 * time.Hour),
		LastPlayed:   now.Add(-time.Hour),
	}

	out := renderPlayer(rec, nil, "2006-01-02", now)
	for _, want := range []string{"vimmer", "Games played: 3", "High score:   7", "1 hour ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Recent games") {
		t.Errorf("no results should mean no recent games section:\n%s", out)
	}

	results := []storage.GameResult{
		{Score: 7, Answered: 9, Correct: 7, Hints: 1, AvgResponse: 2500 * time.Millisecond, PlayedAt: now.Add(-time.Hour)},
		{Score: 2, Answered: 4, Correct: 2, PlayedAt: now.Add(-2 * time.Hour)},
	}
	out = renderPlayer(rec, results, "2006-01-02", now)
	for _, want := range []string{"Recent games", "7/9 correct", "1 hint(s)", "avg 2.5s", "Trend: ▲ improving"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQuestionTree(t *testing.T) {
	bank, err := quiz.NewBank([]quiz.Question{
		{ID: "dl", Prompt: "Delete the line", Expected: []string{"dd"}, Category: quiz.CategoryEdit},
		{ID: "top", Prompt: "Go to the top", Expected: []string{"gg"}, Category: quiz.CategoryMotion},
	})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	out := questionTree(bank)
	motion := strings.Index(out, "motion (1)")
	edit := strings.Index(out, "edit (1)")
	if motion < 0 || edit < 0 || motion > edit {
		t.Errorf("categories missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "Delete the line  dd") || !strings.Contains(out, "Questions (2)") {
		t.Errorf("unexpected tree:\n%s", out)
	}
	if strings.Contains(out, "count") {
		t.Errorf("empty category should be skipped:\n%s", out)
	}
}
