// Package tools provides the MCP tool handlers for Solace.
//
// Each handler follows the same pattern: a struct with the journal store
// (and engines) injected via constructor, Definition() returning the
// mcp.Tool schema, and Handle() processing the request. The handlers own
// argument defaults (history limit 20) and the mapping of core error
// conditions to tool errors; all domain behavior lives in journal,
// coach, and actuation.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}
