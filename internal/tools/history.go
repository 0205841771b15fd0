package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/aurumsolace/solace/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// MoodHistoryTool handles the mood_history MCP tool.
type MoodHistoryTool struct {
	store *journal.Store
}

// NewMoodHistoryTool creates a MoodHistoryTool with the given store.
func NewMoodHistoryTool(store *journal.Store) *MoodHistoryTool {
	return &MoodHistoryTool{store: store}
}

// Definition returns the MCP tool definition for mood_history.
func (t *MoodHistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("mood_history",
		mcp.WithDescription("Show recent mood check-ins, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return (default: 20)"),
		),
	)
}

// Handle processes the mood_history tool call.
func (t *MoodHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intArg(req, "limit", journal.DefaultHistoryLimit)

	history, err := t.store.MoodHistory(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read mood history: %v", err)), nil
	}
	if len(history) == 0 {
		return mcp.NewToolResultText("No mood check-ins recorded yet."), nil
	}

	var sb strings.Builder
	sb.WriteString("## Mood History\n\n")
	for _, e := range history {
		fmt.Fprintf(&sb, "- %s — mood=%s energy=%s focus=%s\n", e.Timestamp, e.Mood, e.Energy, e.Focus)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// ─── ActionHistoryTool ───────────────────────────────────────────────────────

// ActionHistoryTool handles the action_history MCP tool.
type ActionHistoryTool struct {
	store *journal.Store
}

// NewActionHistoryTool creates an ActionHistoryTool with the given store.
func NewActionHistoryTool(store *journal.Store) *ActionHistoryTool {
	return &ActionHistoryTool{store: store}
}

// Definition returns the MCP tool definition for action_history.
func (t *ActionHistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("action_history",
		mcp.WithDescription("Show recent logged actions, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return (default: 20)"),
		),
	)
}

// Handle processes the action_history tool call.
func (t *ActionHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intArg(req, "limit", journal.DefaultHistoryLimit)

	history, err := t.store.ActionHistory(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read action history: %v", err)), nil
	}
	if len(history) == 0 {
		return mcp.NewToolResultText("No actions logged yet."), nil
	}

	var sb strings.Builder
	sb.WriteString("## Action History\n\n")
	for _, e := range history {
		fmt.Fprintf(&sb, "- %s — %q (success=%t)\n", e.Timestamp, e.Action, e.Success)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// ─── FeedbackHistoryTool ─────────────────────────────────────────────────────

// FeedbackHistoryTool handles the feedback_history MCP tool.
type FeedbackHistoryTool struct {
	store *journal.Store
}

// NewFeedbackHistoryTool creates a FeedbackHistoryTool with the given store.
func NewFeedbackHistoryTool(store *journal.Store) *FeedbackHistoryTool {
	return &FeedbackHistoryTool{store: store}
}

// Definition returns the MCP tool definition for feedback_history.
func (t *FeedbackHistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("feedback_history",
		mcp.WithDescription("Show recent feedback entries, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return (default: 20)"),
		),
	)
}

// Handle processes the feedback_history tool call.
func (t *FeedbackHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intArg(req, "limit", journal.DefaultHistoryLimit)

	history, err := t.store.FeedbackHistory(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read feedback history: %v", err)), nil
	}
	if len(history) == 0 {
		return mcp.NewToolResultText("No feedback recorded yet."), nil
	}

	var sb strings.Builder
	sb.WriteString("## Feedback History\n\n")
	for _, e := range history {
		note := ""
		if e.Note != nil {
			note = fmt.Sprintf(" — %s", *e.Note)
		}
		fmt.Fprintf(&sb, "- %s — helped=%t%s\n", e.Timestamp, e.Helped, note)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// ─── SummaryTool ─────────────────────────────────────────────────────────────

// SummaryTool handles the summary MCP tool.
type SummaryTool struct {
	store *journal.Store
}

// NewSummaryTool creates a SummaryTool with the given store.
func NewSummaryTool(store *journal.Store) *SummaryTool {
	return &SummaryTool{store: store}
}

// Definition returns the MCP tool definition for summary.
func (t *SummaryTool) Definition() mcp.Tool {
	return mcp.NewTool("summary",
		mcp.WithDescription("Show counts of stored mood check-ins and logged actions."),
	)
}

// Handle processes the summary tool call.
func (t *SummaryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sum, err := t.store.Summary()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read summary: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Mood entries: %d\nAction entries: %d", sum.MoodEntries, sum.ActionEntries,
	)), nil
}
