package coach

import "strings"

// State is an estimate of the user's condition inferred from text.
// Confidence applies to the mood axis only.
type State struct {
	Mood       string  `json:"mood"`
	Energy     string  `json:"energy"`
	Focus      string  `json:"focus"`
	Confidence float64 `json:"confidence"`
}

// Defaults before any inference rule fires.
const (
	DefaultMood       = "neutral"
	DefaultEnergy     = "medium"
	DefaultFocus      = "ok"
	defaultConfidence = 0.4
	moodConfidence    = 0.7
)

// keywordRule assigns a value to one axis when any of its keywords
// appears in the text as a substring.
type keywordRule struct {
	keywords []string
	value    string
}

// Per-axis rule lists, checked in order with first match winning.
// The low/negative set is deliberately first on every axis: when a
// check-in matches both directions, the one needing support wins.
var (
	moodRules = []keywordRule{
		{keywords: []string{"sad", "down", "depressed", "empty", "tired of", "overwhelmed"}, value: "low"},
		{keywords: []string{"good", "great", "excited", "happy", "pumped", "optimistic"}, value: "good"},
	}

	energyRules = []keywordRule{
		{keywords: []string{"exhausted", "drained", "tired", "sleepy", "fatigued", "worn out"}, value: "low"},
		{keywords: []string{"energized", "wired", "restless", "buzzing", "charged up", "can't sit still"}, value: "high"},
	}

	focusRules = []keywordRule{
		{keywords: []string{"distracted", "scattered", "unfocused", "can't focus", "all over the place", "drifting"}, value: "drifting"},
		{keywords: []string{"locked in", "locked-in", "in the zone", "dialed in", "laser", "flow state"}, value: "locked-in"},
	}
)

// InferState maps free-form text to a state estimate via the fixed
// keyword tables above. This is a placeholder classifier: fully
// deterministic, no model calls, no randomness. Matching is
// case-insensitive substring containment, each axis independent.
func InferState(text string) State {
	lower := strings.ToLower(text)

	state := State{
		Mood:       DefaultMood,
		Energy:     DefaultEnergy,
		Focus:      DefaultFocus,
		Confidence: defaultConfidence,
	}

	if v, ok := matchAxis(lower, moodRules); ok {
		state.Mood = v
		state.Confidence = moodConfidence
	}
	if v, ok := matchAxis(lower, energyRules); ok {
		state.Energy = v
	}
	if v, ok := matchAxis(lower, focusRules); ok {
		state.Focus = v
	}

	return state
}

func matchAxis(text string, rules []keywordRule) (string, bool) {
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.value, true
			}
		}
	}
	return "", false
}
