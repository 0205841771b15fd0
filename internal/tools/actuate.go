package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aurumsolace/solace/internal/actuation"
	"github.com/mark3labs/mcp-go/mcp"
)

// ActuateTool handles the actuate MCP tool.
type ActuateTool struct {
	planner *actuation.Planner
}

// NewActuateTool creates an ActuateTool with the given planner.
func NewActuateTool(planner *actuation.Planner) *ActuateTool {
	return &ActuateTool{planner: planner}
}

// Definition returns the MCP tool definition for actuate.
func (t *ActuateTool) Definition() mcp.Tool {
	return mcp.NewTool("actuate",
		mcp.WithDescription(
			"Compute the device actuation plan (lights/speaker/robot) from the latest "+
				"check-in and streak. Every computed plan is recorded in the journal.",
		),
		mcp.WithString("device",
			mcp.Description("Optionally narrow the plan to one device: lights, speaker, or robot"),
		),
	)
}

// Handle processes the actuate tool call.
func (t *ActuateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	device := req.GetString("device", "")

	res, err := t.planner.PlanLatest(device)
	if err != nil {
		var unknownErr *actuation.UnknownDeviceError
		if errors.As(err, &unknownErr) {
			return mcp.NewToolResultError(unknownErr.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute plan: %v", err)), nil
	}

	payload, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode plan: %v", err)), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
