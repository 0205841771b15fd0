package coach_test

import (
	"testing"

	"github.com/aurumsolace/solace/internal/coach"
)

func TestInferState_Defaults(t *testing.T) {
	tests := []string{
		"",
		"just checking in",
		"the weather is fine",
	}

	for _, text := range tests {
		got := coach.InferState(text)
		want := coach.State{Mood: "neutral", Energy: "medium", Focus: "ok", Confidence: 0.4}
		if got != want {
			t.Errorf("InferState(%q) = %+v, want defaults %+v", text, got, want)
		}
	}
}

func TestInferState_Keywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want coach.State
	}{
		{
			name: "exhausted and sad",
			text: "I'm exhausted and sad today",
			want: coach.State{Mood: "low", Energy: "low", Focus: "ok", Confidence: 0.7},
		},
		{
			name: "upbeat and wired",
			text: "Feeling great, totally wired and dialed in",
			want: coach.State{Mood: "good", Energy: "high", Focus: "locked-in", Confidence: 0.7},
		},
		{
			name: "scattered only",
			text: "so scattered right now",
			want: coach.State{Mood: "neutral", Energy: "medium", Focus: "drifting", Confidence: 0.4},
		},
		{
			name: "energy without mood keeps default confidence",
			text: "pretty drained tonight",
			want: coach.State{Mood: "neutral", Energy: "low", Focus: "ok", Confidence: 0.4},
		},
		{
			name: "case-insensitive matching",
			text: "OVERWHELMED and CAN'T FOCUS",
			want: coach.State{Mood: "low", Energy: "medium", Focus: "drifting", Confidence: 0.7},
		},
		{
			name: "substring containment",
			text: "unhappy? no, quite happy actually",
			want: coach.State{Mood: "good", Energy: "medium", Focus: "ok", Confidence: 0.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coach.InferState(tt.text); got != tt.want {
				t.Errorf("InferState(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestInferState_LowSetWinsOverGoodSet(t *testing.T) {
	// A check-in naming both directions resolves to the one needing
	// support: negative rule lists are evaluated first on every axis.
	got := coach.InferState("happy but so tired, tired of everything honestly")
	if got.Mood != "low" {
		t.Errorf("mood = %q, want low when both sets match", got.Mood)
	}
	if got.Energy != "low" {
		t.Errorf("energy = %q, want low", got.Energy)
	}
}
