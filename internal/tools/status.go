package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the itra_status MCP tool.
type StatusTool struct {
	tracker *gateway.Tracker
}

// NewStatusTool creates a StatusTool.
func NewStatusTool(tracker *gateway.Tracker) *StatusTool {
	return &StatusTool{tracker: tracker}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("itra_status",
		mcp.WithDescription(
			"Show the current ITRA gateway session: phase progress, answers given so far "+
				"and the next question to ask.",
		),
	)
}

// Handle processes the itra_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	session := t.tracker.Current()
	answers := session.Answers.Snapshot()

	var phaseTable strings.Builder
	phaseTable.WriteString("| Phase | Title | Status |\n")
	phaseTable.WriteString("|-------|-------|--------|\n")
	for _, p := range gateway.Phases {
		fmt.Fprintf(&phaseTable, "| %d | %s | %s |\n", p, gateway.PhaseTitle(p), phaseMarker(answers, p))
	}

	var answerTable strings.Builder
	if len(answers) == 0 {
		answerTable.WriteString("_No answers yet._\n")
	} else {
		answerTable.WriteString("| Question | Answer |\n")
		answerTable.WriteString("|----------|--------|\n")
		for _, id := range answers.Answered() {
			fmt.Fprintf(&answerTable, "| %s `%s` | %s |\n", gateway.Label(id), id, gateway.Display(id, answers[id]))
		}
	}

	next := "All gateway questions are answered. Use `itra_plan` or `itra_export`."
	if q, ok := nextQuestion(answers); ok {
		next = fmt.Sprintf("%s `%s`: %s", q.Label, q.ID, q.Prompt)
	}

	response := fmt.Sprintf(
		"# ITRA Gateway Status\n\n"+
			"**Session:** `%s`\n"+
			"**Started:** %s\n"+
			"**Progress:** %s\n\n"+
			"## Phases\n\n"+
			"%s\n"+
			"## Answers\n\n"+
			"%s\n"+
			"## Next\n\n"+
			"%s\n",
		session.ID,
		session.StartedAt.Format("2006-01-02 15:04:05 MST"),
		formatProgress(answers),
		phaseTable.String(),
		answerTable.String(),
		next,
	)

	return mcp.NewToolResultText(response), nil
}
