package storage

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "vimmer", "vimmer", false},
		{"trimmed", "  vimmer\t", "vimmer", false},
		{"unicode", "ヴィム", "ヴィム", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("a", MaxUsernameLength+1), "", true},
		{"max length", strings.Repeat("a", MaxUsernameLength), strings.Repeat("a", MaxUsernameLength), false},
		{"control character", "vi\x00m", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeUsername(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPlayer) {
					t.Errorf("NormalizeUsername(%q) error = %v, want ErrInvalidPlayer", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeUsername(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrepareResult(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	calls := 0
	newID := func() string {
		calls++
		return "generated"
	}

	got, err := PrepareResult(GameResult{Username: " p1 ", Score: 3}, newID, now)
	if err != nil {
		t.Fatalf("PrepareResult: %v", err)
	}
	if got.Username != "p1" || got.ID != "generated" || !got.PlayedAt.Equal(now) {
		t.Errorf("PrepareResult = %+v", got)
	}

	played := now.Add(-time.Hour)
	got, err = PrepareResult(GameResult{ID: "keep", Username: "p1", PlayedAt: played}, newID, now)
	if err != nil {
		t.Fatalf("PrepareResult: %v", err)
	}
	if got.ID != "keep" || !got.PlayedAt.Equal(played) {
		t.Errorf("PrepareResult overwrote caller values: %+v", got)
	}
	if calls != 1 {
		t.Errorf("newID called %d times, want 1", calls)
	}

	if _, err := PrepareResult(GameResult{}, newID, now); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("empty username error = %v", err)
	}
}
