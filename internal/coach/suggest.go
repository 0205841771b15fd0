// Package coach turns observed state into coaching suggestions and infers
// state from free-form check-in text.
//
// Both engines are deterministic rule tables: ordered lists of
// (predicate, outcome) pairs evaluated top to bottom, first match wins.
// Precedence is a visible data structure, not control flow.
package coach

import (
	"fmt"
	"strings"
)

// The suggestion strings are part of the observable contract — clients
// and prior deployments match on them verbatim. Do not reword.
const (
	msgSelfCare    = "You seem low today — pick the smallest act of self-care you can manage: a glass of water, a stretch, or one deep breath."
	msgTinyTask    = "Energy is present even if mood is low — try one tiny 5-minute task to regain control."
	msgOnePriority = "You're steady but scattered — choose a single priority and work on it for 10 focused minutes."
	msgDeepFocus   = "Great conditions today — move something meaningful forward with 20 minutes of deep focus."
	msgStartSmall  = "Start small — what is one simple action Future You would thank you for?"
)

// suggestionRule pairs a predicate over (mood, energy, focus) with the
// message returned when it fires.
type suggestionRule struct {
	when func(mood, energy, focus string) bool
	text string
}

// suggestionRules is evaluated in order; the first matching rule wins.
// Values outside the known enumerations match nothing and fall through
// to the default.
var suggestionRules = []suggestionRule{
	{
		when: func(m, e, _ string) bool { return m == "low" && e == "low" },
		text: msgSelfCare,
	},
	{
		when: func(m, e, _ string) bool { return m == "low" && (e == "medium" || e == "high") },
		text: msgTinyTask,
	},
	{
		when: func(m, _, f string) bool { return m == "neutral" && f == "drifting" },
		text: msgOnePriority,
	},
	{
		when: func(m, e, _ string) bool { return m == "good" && (e == "medium" || e == "high") },
		text: msgDeepFocus,
	},
}

// Suggest maps a (mood, energy, focus) triple to a coaching message.
// Matching is case-insensitive; unmatched states get the generic
// start-small message.
func Suggest(mood, energy, focus string) string {
	m := strings.ToLower(mood)
	e := strings.ToLower(energy)
	f := strings.ToLower(focus)

	for _, rule := range suggestionRules {
		if rule.when(m, e, f) {
			return rule.text
		}
	}
	return msgStartSmall
}

// StreakClause returns the trailing encouragement selected by streak
// length: protect-the-streak at three or more days, keep-it-going at one
// or two, win-today otherwise.
func StreakClause(streakDays int) string {
	switch {
	case streakDays >= 3:
		return fmt.Sprintf("You're on a %d-day streak. Protect it with one small action today.", streakDays)
	case streakDays == 1 || streakDays == 2:
		return fmt.Sprintf("Good start — you're at %d day of action. Let's keep it going.", streakDays)
	default:
		return "Let's just focus on winning today with one meaningful action."
	}
}

// SuggestWithStreak composes the base suggestion with the streak clause,
// joined by a single space.
func SuggestWithStreak(mood, energy, focus string, streakDays int) string {
	return Suggest(mood, energy, focus) + " " + StreakClause(streakDays)
}
