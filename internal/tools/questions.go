package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
)

// QuestionsTool handles the itra_questions MCP tool.
// It lists the gateway questions, optionally for one phase.
type QuestionsTool struct {
	tracker *gateway.Tracker
}

// NewQuestionsTool creates a QuestionsTool.
func NewQuestionsTool(tracker *gateway.Tracker) *QuestionsTool {
	return &QuestionsTool{tracker: tracker}
}

// Definition returns the MCP tool definition for registration.
func (t *QuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("itra_questions",
		mcp.WithDescription(
			"List the ITRA gateway questions with their options and guidance, grouped by phase. "+
				"Shows current answers and which phases are still locked.",
		),
		mcp.WithNumber("phase",
			mcp.Description("Only list this phase (1, 2 or 3). Omit for all phases."),
		),
	)
}

// Handle processes the itra_questions tool call.
func (t *QuestionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phases := gateway.Phases
	if n := intArg(req, "phase", 0); n != 0 {
		p := gateway.Phase(n)
		if gateway.PhaseQuestions(p) == nil {
			return mcp.NewToolResultError(fmt.Sprintf(
				"Unknown phase %d: must be between 1 and %d", n, gateway.PhaseCount,
			)), nil
		}
		phases = []gateway.Phase{p}
	}

	answers := t.tracker.Current().Answers.Snapshot()

	var sb strings.Builder
	sb.WriteString("# ITRA Gateway Questions\n\n")
	for _, p := range phases {
		fmt.Fprintf(&sb, "## Phase %d: %s (%s)\n\n", p, gateway.PhaseTitle(p), phaseMarker(answers, p))
		for _, id := range gateway.PhaseQuestions(p) {
			q, _ := gateway.Lookup(id)
			formatQuestion(&sb, q, answers)
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
