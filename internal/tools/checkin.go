package tools

import (
	"context"
	"fmt"

	"github.com/aurumsolace/solace/internal/coach"
	"github.com/aurumsolace/solace/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// CheckinMoodTool handles the checkin_mood MCP tool.
type CheckinMoodTool struct {
	store *journal.Store
}

// NewCheckinMoodTool creates a CheckinMoodTool with the given store.
func NewCheckinMoodTool(store *journal.Store) *CheckinMoodTool {
	return &CheckinMoodTool{store: store}
}

// Definition returns the MCP tool definition for checkin_mood.
func (t *CheckinMoodTool) Definition() mcp.Tool {
	return mcp.NewTool("checkin_mood",
		mcp.WithDescription(
			"Record a mood check-in (mood/energy/focus) and get a coaching suggestion back.",
		),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Current mood: low, neutral, or good"),
		),
		mcp.WithString("energy",
			mcp.Required(),
			mcp.Description("Current energy: low, medium, or high"),
		),
		mcp.WithString("focus",
			mcp.Required(),
			mcp.Description("Current focus: drifting, ok, or locked-in"),
		),
	)
}

// Handle processes the checkin_mood tool call.
func (t *CheckinMoodTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mood := req.GetString("mood", "")
	energy := req.GetString("energy", "")
	focus := req.GetString("focus", "")

	if mood == "" || energy == "" || focus == "" {
		return mcp.NewToolResultError("'mood', 'energy', and 'focus' are all required"), nil
	}

	entry, err := t.store.InsertMood(mood, energy, focus)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to store check-in: %v", err)), nil
	}

	suggestion := coach.Suggest(entry.Mood, entry.Energy, entry.Focus)

	return mcp.NewToolResultText(fmt.Sprintf(
		"Check-in stored at %s (mood=%s energy=%s focus=%s).\n\nSuggestion: %s",
		entry.Timestamp, entry.Mood, entry.Energy, entry.Focus, suggestion,
	)), nil
}

// ─── CheckinTextTool ─────────────────────────────────────────────────────────

// CheckinTextTool handles the checkin_text MCP tool: the auto-checkin
// flow that infers state from free-form text before storing it.
type CheckinTextTool struct {
	store *journal.Store
}

// NewCheckinTextTool creates a CheckinTextTool with the given store.
func NewCheckinTextTool(store *journal.Store) *CheckinTextTool {
	return &CheckinTextTool{store: store}
}

// Definition returns the MCP tool definition for checkin_text.
func (t *CheckinTextTool) Definition() mcp.Tool {
	return mcp.NewTool("checkin_text",
		mcp.WithDescription(
			"Check in with free-form text. Solace infers mood/energy/focus from the text, "+
				"stores the inferred check-in, and returns a streak-aware suggestion.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("How the user says they're doing, in their own words"),
		),
	)
}

// Handle processes the checkin_text tool call.
func (t *CheckinTextTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	state := coach.InferState(text)

	entry, err := t.store.InsertMood(state.Mood, state.Energy, state.Focus)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to store check-in: %v", err)), nil
	}

	streak, err := t.store.ActionStreak()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute streak: %v", err)), nil
	}

	suggestion := coach.SuggestWithStreak(entry.Mood, entry.Energy, entry.Focus, streak.StreakDays)

	return mcp.NewToolResultText(fmt.Sprintf(
		"Inferred mood=%s energy=%s focus=%s (confidence %.1f), stored at %s.\n\nSuggestion: %s",
		state.Mood, state.Energy, state.Focus, state.Confidence, entry.Timestamp, suggestion,
	)), nil
}

// ─── InferStateTool ──────────────────────────────────────────────────────────

// InferStateTool handles the infer_state MCP tool: inference without the
// write, for previewing what a text check-in would record.
type InferStateTool struct{}

// NewInferStateTool creates an InferStateTool.
func NewInferStateTool() *InferStateTool {
	return &InferStateTool{}
}

// Definition returns the MCP tool definition for infer_state.
func (t *InferStateTool) Definition() mcp.Tool {
	return mcp.NewTool("infer_state",
		mcp.WithDescription(
			"Infer mood/energy/focus from free-form text without storing anything.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to classify"),
		),
	)
}

// Handle processes the infer_state tool call.
func (t *InferStateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	state := coach.InferState(text)

	return mcp.NewToolResultText(fmt.Sprintf(
		"mood=%s energy=%s focus=%s confidence=%.1f",
		state.Mood, state.Energy, state.Focus, state.Confidence,
	)), nil
}
