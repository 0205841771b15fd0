package tools

import (
	"context"
	"fmt"

	"github.com/aurumsolace/solace/internal/coach"
	"github.com/aurumsolace/solace/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// noCheckinMessage is returned when coaching is requested before any
// mood has been recorded. Clients show it verbatim.
const noCheckinMessage = "No mood check-ins found yet. Do a quick check-in first so I can suggest something."

// CoachTool handles the coach MCP tool: a streak-aware suggestion based
// on the latest mood check-in.
type CoachTool struct {
	store *journal.Store
}

// NewCoachTool creates a CoachTool with the given store.
func NewCoachTool(store *journal.Store) *CoachTool {
	return &CoachTool{store: store}
}

// Definition returns the MCP tool definition for coach.
func (t *CoachTool) Definition() mcp.Tool {
	return mcp.NewTool("coach",
		mcp.WithDescription(
			"Get a suggested next step based on the latest mood check-in and the current action streak.",
		),
	)
}

// Handle processes the coach tool call.
func (t *CoachTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	latest, err := t.store.LatestMood()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read latest mood: %v", err)), nil
	}
	if latest == nil {
		return mcp.NewToolResultText(noCheckinMessage), nil
	}

	streak, err := t.store.ActionStreak()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute streak: %v", err)), nil
	}

	suggestion := coach.SuggestWithStreak(latest.Mood, latest.Energy, latest.Focus, streak.StreakDays)

	return mcp.NewToolResultText(fmt.Sprintf(
		"Based on check-in at %s (mood=%s energy=%s focus=%s), streak %d day(s):\n\n%s",
		latest.Timestamp, latest.Mood, latest.Energy, latest.Focus, streak.StreakDays, suggestion,
	)), nil
}
