// Package tools implements MCP tool handlers for the ITRA gateway.
//
// Each tool is a struct holding its dependencies, with Definition()
// returning the mcp.Tool schema and Handle() processing the call.
// User-correctable problems come back as tool errors; only
// infrastructure failures are returned as Go errors.
package tools

import (
	"fmt"
	"strings"

	"github.com/HendryAvila/itra-gateway/internal/assessment"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
)

// stringArg reads a scalar argument as text. Hosts sometimes send "2"
// for S.1 as a JSON number, so numbers and booleans are accepted too.
func stringArg(req mcp.CallToolRequest, key string) string {
	switch v := req.GetArguments()[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return ""
	}
}

// intArg extracts an integer argument, returning defaultVal if the key is
// missing or not a number (JSON numbers are float64).
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

// nextQuestion returns the first unanswered question in an unlocked
// phase, or false when the gateway is complete.
func nextQuestion(answers gateway.Answers) (gateway.Question, bool) {
	for _, id := range gateway.QuestionOrder {
		if answers.Has(id) {
			continue
		}
		if !gateway.IsPhaseUnlocked(answers, gateway.PhaseOf(id)) {
			continue
		}
		return gateway.Lookup(id)
	}
	return gateway.Question{}, false
}

// phaseMarker renders a phase's state for status tables.
func phaseMarker(answers gateway.Answers, phase gateway.Phase) string {
	switch {
	case gateway.IsPhaseComplete(answers, phase):
		return "✅ complete"
	case gateway.IsPhaseUnlocked(answers, phase):
		return "🔄 open"
	default:
		return "🔒 locked"
	}
}

// formatQuestion renders one catalog question with its options.
func formatQuestion(sb *strings.Builder, q gateway.Question, answers gateway.Answers) {
	fmt.Fprintf(sb, "### %s `%s`\n\n%s\n\n", q.Label, q.ID, q.Prompt)
	if v, ok := answers.Value(q.ID); ok {
		fmt.Fprintf(sb, "**Current answer:** %s\n\n", gateway.Display(q.ID, v))
	}
	sb.WriteString("| Answer | Option |\n")
	sb.WriteString("|--------|--------|\n")
	for _, o := range q.Options {
		fmt.Fprintf(sb, "| `%s` | %s |\n", o.Value, o.Label)
	}
	fmt.Fprintf(sb, "\n💡 %s\n\n", q.Help)
}

// formatPlan renders the live assessment scope as markdown.
func formatPlan(plan assessment.Plan) string {
	var sb strings.Builder
	sb.WriteString("| Track | Enabled | Questions |\n")
	sb.WriteString("|-------|---------|-----------|\n")
	for _, p := range plan.Paths {
		marker := "❌"
		if p.Enabled {
			marker = "✅"
		}
		fmt.Fprintf(&sb, "| %s | %s | %d |\n", p.Name, marker, p.QuestionCount)
	}

	fmt.Fprintf(&sb, "\n**Enabled tracks:** %d\n", plan.EnabledTracks)
	fmt.Fprintf(&sb, "**Total questions:** %d\n", plan.TotalQuestions)
	fmt.Fprintf(&sb, "**Estimated time:** %s minutes\n", plan.EstimatedMinutes)
	return sb.String()
}

// formatBreakdown lists the enabled paths with their descriptions.
func formatBreakdown(plan assessment.Plan) string {
	var sb strings.Builder
	for _, p := range plan.Breakdown() {
		fmt.Fprintf(&sb, "- **%s** (%d questions): %s\n", p.Name, p.QuestionCount, p.Description)
	}
	return sb.String()
}

// formatProgress renders phase progress as a one-line summary.
func formatProgress(answers gateway.Answers) string {
	p := gateway.ProgressOf(answers)
	return fmt.Sprintf("Phase %d of %d, %d%% complete (%d/%d questions answered)",
		p.CurrentPhase, gateway.PhaseCount, p.Percent, len(answers), len(gateway.QuestionOrder))
}
