package tools

import (
	"context"
	"fmt"

	"github.com/aurumsolace/solace/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// FeedbackTool handles the give_feedback MCP tool.
type FeedbackTool struct {
	store *journal.Store
}

// NewFeedbackTool creates a FeedbackTool with the given store.
func NewFeedbackTool(store *journal.Store) *FeedbackTool {
	return &FeedbackTool{store: store}
}

// Definition returns the MCP tool definition for give_feedback.
func (t *FeedbackTool) Definition() mcp.Tool {
	return mcp.NewTool("give_feedback",
		mcp.WithDescription(
			"Record whether the most recent suggestion or actuation plan helped.",
		),
		mcp.WithBoolean("helped",
			mcp.Required(),
			mcp.Description("Did it help?"),
		),
		mcp.WithString("note",
			mcp.Description("Optional free-form note"),
		),
	)
}

// Handle processes the give_feedback tool call.
func (t *FeedbackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, ok := req.GetArguments()["helped"]; !ok {
		return mcp.NewToolResultError("'helped' is required"), nil
	}
	helped := boolArg(req, "helped", false)
	note := req.GetString("note", "")

	entry, err := t.store.InsertFeedback(helped, note)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to store feedback: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Feedback stored at %s (helped=%t).", entry.Timestamp, entry.Helped,
	)), nil
}
