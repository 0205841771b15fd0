// Package server wires the journal store, engines, and MCP tools and
// creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools that depend on them. No business logic
// lives here — only wiring.
package server

import (
	"fmt"

	"github.com/aurumsolace/solace/internal/actuation"
	"github.com/aurumsolace/solace/internal/journal"
	"github.com/aurumsolace/solace/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools registered.
//
// The returned cleanup function closes the journal store's database
// connection and must be called on shutdown (typically via defer).
func New(cfg journal.Config) (*server.MCPServer, func() error, error) {
	store, err := journal.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening journal: %w", err)
	}

	s := server.NewMCPServer(
		"solace",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	planner := actuation.NewPlanner(store)
	Register(s, store, planner)

	return s, store.Close, nil
}

// Register adds all Solace tools to an MCP server. Split out from New so
// tests can register against an in-memory store.
func Register(s *server.MCPServer, store *journal.Store, planner *actuation.Planner) {
	// --- Check-ins ---
	checkinMood := tools.NewCheckinMoodTool(store)
	s.AddTool(checkinMood.Definition(), checkinMood.Handle)

	checkinText := tools.NewCheckinTextTool(store)
	s.AddTool(checkinText.Definition(), checkinText.Handle)

	inferState := tools.NewInferStateTool()
	s.AddTool(inferState.Definition(), inferState.Handle)

	// --- Actions & streak ---
	logAction := tools.NewLogActionTool(store)
	s.AddTool(logAction.Definition(), logAction.Handle)

	actionStreak := tools.NewActionStreakTool(store)
	s.AddTool(actionStreak.Definition(), actionStreak.Handle)

	// --- Coaching & actuation ---
	coachTool := tools.NewCoachTool(store)
	s.AddTool(coachTool.Definition(), coachTool.Handle)

	actuate := tools.NewActuateTool(planner)
	s.AddTool(actuate.Definition(), actuate.Handle)

	// --- Feedback ---
	feedback := tools.NewFeedbackTool(store)
	s.AddTool(feedback.Definition(), feedback.Handle)

	// --- History & counts ---
	moodHistory := tools.NewMoodHistoryTool(store)
	s.AddTool(moodHistory.Definition(), moodHistory.Handle)

	actionHistory := tools.NewActionHistoryTool(store)
	s.AddTool(actionHistory.Definition(), actionHistory.Handle)

	feedbackHistory := tools.NewFeedbackHistoryTool(store)
	s.AddTool(feedbackHistory.Definition(), feedbackHistory.Handle)

	summary := tools.NewSummaryTool(store)
	s.AddTool(summary.Definition(), summary.Handle)
}

// serverInstructions tells the AI client how to use Solace.
func serverInstructions() string {
	return `You have access to Solace, a personal mood and habit coaching server.

## What Solace tracks
- Mood check-ins: mood (low/neutral/good), energy (low/medium/high),
  focus (drifting/ok/locked-in)
- Logged actions with a success flag; successful actions feed a
  consecutive-day streak
- Feedback on whether suggestions and actuation plans helped

## Typical flow
1. When the user tells you how they feel, call checkin_mood (explicit
   values) or checkin_text (free-form text — Solace infers the state).
2. When the user reports doing something, call log_action. Success
   defaults to true; pass success=false for attempts that didn't land.
3. When the user asks what to do next, call coach. The suggestion is
   streak-aware: it nudges the user to protect an active streak.
4. To adjust the room (lights, soundscape, companion robot), call
   actuate. Pass device to narrow the plan to one device.
5. After the user reacts to a suggestion or plan, call give_feedback.

## Notes
- Suggestions are deterministic rules, not generated text: relay them
  verbatim rather than rewriting them.
- checkin_text uses a simple keyword classifier. If its inferred state
  looks wrong, ask the user and do an explicit checkin_mood instead.
- mood_history, action_history, feedback_history, summary, and
  action_streak are read-only queries; use them to ground conversations
  about trends ("you've checked in low three days in a row").`
}
