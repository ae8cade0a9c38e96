package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/itra-gateway/internal/assessment"
	"github.com/HendryAvila/itra-gateway/internal/export"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ExportTool handles the itra_export MCP tool.
// It serializes the session into an assessment configuration document.
type ExportTool struct {
	tracker  *gateway.Tracker
	exporter *export.Exporter
	logger   *zap.Logger
}

// NewExportTool creates an ExportTool.
func NewExportTool(tracker *gateway.Tracker, exporter *export.Exporter, logger *zap.Logger) *ExportTool {
	return &ExportTool{tracker: tracker, exporter: exporter, logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("itra_export",
		mcp.WithDescription(
			"Export the gateway answers and the computed assessment scope as a configuration "+
				"document for downstream systems. Exporting never changes the answers and can be "+
				"repeated; each export carries a fresh timestamp.",
		),
		mcp.WithString("format",
			mcp.Description("Document format: 'json' or 'yaml'. Defaults to the configured format."),
			mcp.Enum("json", "yaml"),
		),
		mcp.WithBoolean("save",
			mcp.Description("Write the document to the export directory. Defaults to true."),
		),
	)
}

// Handle processes the itra_export tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exp := *t.exporter
	if raw := req.GetString("format", ""); raw != "" {
		f, err := export.ParseFormat(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		exp.Format = f
	}
	save := boolArg(req, "save", true)

	session := t.tracker.Current()
	answers := session.Answers.Snapshot()
	plan := assessment.Evaluate(answers)

	artifact, err := exp.Export(answers, plan, session.StartedAt)
	if err != nil {
		if errors.Is(err, export.ErrSerialization) {
			t.logger.Error("export serialization failed", zap.String("session", session.ID), zap.Error(err))
			return mcp.NewToolResultError(fmt.Sprintf("Export failed: %v. Your answers are unchanged; try again.", err)), nil
		}
		return nil, fmt.Errorf("exporting assessment: %w", err)
	}

	location := "_Not saved (save=false)._"
	if save {
		path, err := exp.Save(artifact)
		if err != nil {
			t.logger.Error("export write failed", zap.String("dir", exp.Dir), zap.Error(err))
			return mcp.NewToolResultError(fmt.Sprintf(
				"Export could not be written: %v. Your answers are unchanged.", err,
			)), nil
		}
		location = fmt.Sprintf("`%s`", path)
	}

	t.logger.Info("assessment exported",
		zap.String("session", session.ID),
		zap.String("file", artifact.Filename),
		zap.String("format", string(artifact.Format)),
		zap.Int("total_questions", plan.TotalQuestions),
		zap.Bool("saved", save),
	)

	var sb strings.Builder
	sb.WriteString("# 📦 Assessment Configuration Exported\n\n")
	if !gateway.IsGatewayComplete(answers) {
		sb.WriteString("⚠️ Exported with an incomplete gateway.\n\n")
	}
	fmt.Fprintf(&sb, "**File:** `%s`\n", artifact.Filename)
	fmt.Fprintf(&sb, "**Saved to:** %s\n", location)
	fmt.Fprintf(&sb, "**Enabled tracks:** %d\n", artifact.Document.Summary.EnabledPaths)
	fmt.Fprintf(&sb, "**Total questions:** %d\n", artifact.Document.Summary.TotalQuestions)
	fmt.Fprintf(&sb, "**Estimated time:** %s minutes\n\n", artifact.Document.Summary.EstimatedTimeMinutes)
	fmt.Fprintf(&sb, "```%s\n%s\n```\n", artifact.Format, strings.TrimRight(string(artifact.Data), "\n"))

	return mcp.NewToolResultText(sb.String()), nil
}
