package tools

import (
	"context"
	"fmt"

	"github.com/aurumsolace/solace/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// LogActionTool handles the log_action MCP tool.
type LogActionTool struct {
	store *journal.Store
}

// NewLogActionTool creates a LogActionTool with the given store.
func NewLogActionTool(store *journal.Store) *LogActionTool {
	return &LogActionTool{store: store}
}

// Definition returns the MCP tool definition for log_action.
func (t *LogActionTool) Definition() mcp.Tool {
	return mcp.NewTool("log_action",
		mcp.WithDescription(
			"Log an action the user took. Successful actions feed the day streak.",
		),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("What was done (e.g. 'went for a walk', 'wrote for 10 minutes')"),
		),
		mcp.WithBoolean("success",
			mcp.Description("Whether the action succeeded (default: true)"),
		),
	)
}

// Handle processes the log_action tool call.
func (t *LogActionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action := req.GetString("action", "")
	if action == "" {
		return mcp.NewToolResultError("'action' is required"), nil
	}
	success := boolArg(req, "success", true)

	entry, err := t.store.InsertAction(action, success)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to store action: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Action stored at %s: %q (success=%t)", entry.Timestamp, entry.Action, entry.Success,
	)), nil
}

// ─── ActionStreakTool ────────────────────────────────────────────────────────

// ActionStreakTool handles the action_streak MCP tool.
type ActionStreakTool struct {
	store *journal.Store
}

// NewActionStreakTool creates an ActionStreakTool with the given store.
func NewActionStreakTool(store *journal.Store) *ActionStreakTool {
	return &ActionStreakTool{store: store}
}

// Definition returns the MCP tool definition for action_streak.
func (t *ActionStreakTool) Definition() mcp.Tool {
	return mcp.NewTool("action_streak",
		mcp.WithDescription(
			"Show the current streak of consecutive days with at least one successful action.",
		),
	)
}

// Handle processes the action_streak tool call.
func (t *ActionStreakTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	streak, err := t.store.ActionStreak()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute streak: %v", err)), nil
	}

	last := "never"
	if streak.LastActionDate != nil {
		last = *streak.LastActionDate
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Streak: %d day(s). Last successful action: %s.", streak.StreakDays, last,
	)), nil
}
