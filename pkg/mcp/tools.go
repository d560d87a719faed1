package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolNameInspectProject is the MCP tool name wrapping detector.Detect.
const ToolNameInspectProject = "inspect_project"

// Sentinel errors for tool input validation.
var (
	// ErrEmptyRootPath indicates the root_path parameter is empty.
	ErrEmptyRootPath = errors.New("root_path parameter is required and must not be empty")
	// ErrRootPathNotAbsolute indicates root_path is not an absolute path.
	ErrRootPathNotAbsolute = errors.New("root_path must be an absolute path")
)

// InspectProjectInput is the input schema for the inspect_project tool.
type InspectProjectInput struct {
	RootPath           string `json:"root_path"                      jsonschema:"absolute path to the project root to inspect"`
	MaxDepth           int    `json:"max_depth,omitempty"             jsonschema:"maximum directory recursion depth (default: 16)"`
	MaxProjectFiles    int    `json:"max_project_files,omitempty"     jsonschema:"maximum number of files to visit (default: 50000)"`
	DisableGitAnalysis bool   `json:"disable_git_analysis,omitempty"  jsonschema:"skip reading local VCS metadata"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

func validateInspectProjectInput(input InspectProjectInput) error {
	if input.RootPath == "" {
		return ErrEmptyRootPath
	}

	if !filepath.IsAbs(input.RootPath) {
		return ErrRootPathNotAbsolute
	}

	return nil
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
