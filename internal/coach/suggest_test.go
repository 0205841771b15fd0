package coach_test

import (
	"strings"
	"testing"

	"github.com/aurumsolace/solace/internal/coach"
)

// ─── Suggest ────────────────────────────────────────────────────────────────

func TestSuggest(t *testing.T) {
	tests := []struct {
		name                string
		mood, energy, focus string
		want                string
	}{
		{
			name: "low mood low energy",
			mood: "low", energy: "low", focus: "drifting",
			want: "You seem low today — pick the smallest act of self-care you can manage: a glass of water, a stretch, or one deep breath.",
		},
		{
			name: "low mood medium energy",
			mood: "low", energy: "medium", focus: "ok",
			want: "Energy is present even if mood is low — try one tiny 5-minute task to regain control.",
		},
		{
			name: "low mood high energy",
			mood: "low", energy: "high", focus: "ok",
			want: "Energy is present even if mood is low — try one tiny 5-minute task to regain control.",
		},
		{
			name: "neutral drifting",
			mood: "neutral", energy: "high", focus: "drifting",
			want: "You're steady but scattered — choose a single priority and work on it for 10 focused minutes.",
		},
		{
			name: "good high energy",
			mood: "good", energy: "high", focus: "locked-in",
			want: "Great conditions today — move something meaningful forward with 20 minutes of deep focus.",
		},
		{
			name: "neutral steady falls through",
			mood: "neutral", energy: "medium", focus: "ok",
			want: "Start small — what is one simple action Future You would thank you for?",
		},
		{
			name: "good low energy falls through",
			mood: "good", energy: "low", focus: "ok",
			want: "Start small — what is one simple action Future You would thank you for?",
		},
		{
			name: "unknown values fall through",
			mood: "ecstatic", energy: "overflowing", focus: "hyperfocused",
			want: "Start small — what is one simple action Future You would thank you for?",
		},
		{
			name: "matching is case-insensitive",
			mood: "Low", energy: "LOW", focus: "Drifting",
			want: "You seem low today — pick the smallest act of self-care you can manage: a glass of water, a stretch, or one deep breath.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coach.Suggest(tt.mood, tt.energy, tt.focus)
			if got != tt.want {
				t.Errorf("Suggest(%q, %q, %q) = %q, want %q", tt.mood, tt.energy, tt.focus, got, tt.want)
			}
		})
	}
}

func TestSuggest_LowLowBeatsLowHigh(t *testing.T) {
	// Both low-mood rules could plausibly claim ("low","low"); the
	// self-care rule is listed first and must win.
	got := coach.Suggest("low", "low", "ok")
	if !strings.Contains(got, "self-care") {
		t.Errorf("Suggest(low, low, ok) = %q, want the self-care message", got)
	}
}

// ─── StreakClause ───────────────────────────────────────────────────────────

func TestStreakClause(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "Let's just focus on winning today with one meaningful action."},
		{1, "Good start — you're at 1 day of action. Let's keep it going."},
		{2, "Good start — you're at 2 day of action. Let's keep it going."},
		{3, "You're on a 3-day streak. Protect it with one small action today."},
		{7, "You're on a 7-day streak. Protect it with one small action today."},
		{-1, "Let's just focus on winning today with one meaningful action."},
	}

	for _, tt := range tests {
		if got := coach.StreakClause(tt.days); got != tt.want {
			t.Errorf("StreakClause(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestSuggestWithStreak_SingleSpaceJoin(t *testing.T) {
	got := coach.SuggestWithStreak("good", "high", "ok", 4)
	want := "Great conditions today — move something meaningful forward with 20 minutes of deep focus." +
		" " +
		"You're on a 4-day streak. Protect it with one small action today."
	if got != want {
		t.Errorf("SuggestWithStreak = %q, want %q", got, want)
	}
}
