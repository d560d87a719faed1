package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector"
)

// handleInspectProject processes inspect_project tool calls by running the
// detector against a caller-supplied root path on the real filesystem. Each
// call is tagged with its own correlation ID, attached to the active span
// (when tracing is enabled) and recorded on the returned profile, so the
// caller receives the ID even when sampling drops the span.
func handleInspectProject(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input InspectProjectInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateInspectProjectInput(input)
	if err != nil {
		return errorResult(err)
	}

	correlationID := uuid.New().String()
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("projectdetect.correlation_id", correlationID))

	cfg := detector.Config{
		MaxDepth:          input.MaxDepth,
		MaxProjectFiles:   input.MaxProjectFiles,
		EnableGitAnalysis: !input.DisableGitAnalysis,
	}

	profile, detectErr := detector.Detect(ctx, afero.NewOsFs(), input.RootPath, cfg)
	if detectErr != nil {
		return errorResult(fmt.Errorf("detect project: %w", detectErr))
	}

	profile.Notes = append(profile.Notes, "correlation_id="+correlationID)

	return jsonResult(profile)
}
