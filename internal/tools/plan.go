package tools

import (
	"context"
	"strings"

	"github.com/HendryAvila/itra-gateway/internal/assessment"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
)

// PlanTool handles the itra_plan MCP tool.
// Scope is always computed from the current answers, complete or not.
type PlanTool struct {
	tracker *gateway.Tracker
}

// NewPlanTool creates a PlanTool.
func NewPlanTool(tracker *gateway.Tracker) *PlanTool {
	return &PlanTool{tracker: tracker}
}

// Definition returns the MCP tool definition for registration.
func (t *PlanTool) Definition() mcp.Tool {
	return mcp.NewTool("itra_plan",
		mcp.WithDescription(
			"Show the assessment plan implied by the current gateway answers: which of the eight "+
				"assessment tracks are enabled, how many questions each contributes, the total "+
				"and the estimated completion time. Works with partial answers.",
		),
	)
}

// Handle processes the itra_plan tool call.
func (t *PlanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answers := t.tracker.Current().Answers.Snapshot()
	plan := assessment.Evaluate(answers)

	var sb strings.Builder
	sb.WriteString("# ITRA Assessment Plan\n\n")
	if !gateway.IsGatewayComplete(answers) {
		sb.WriteString("⚠️ The gateway is not complete yet. Unanswered questions count as not applicable.\n\n")
	}
	sb.WriteString(formatPlan(plan))
	sb.WriteString("\n## Assessment Breakdown\n\n")
	sb.WriteString(formatBreakdown(plan))

	return mcp.NewToolResultText(sb.String()), nil
}
