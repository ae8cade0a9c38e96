package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/itra-gateway/internal/assessment"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// AnswerTool handles the itra_answer MCP tool.
// It records one gateway answer in the active session.
type AnswerTool struct {
	tracker *gateway.Tracker
	logger  *zap.Logger
}

// NewAnswerTool creates an AnswerTool.
func NewAnswerTool(tracker *gateway.Tracker, logger *zap.Logger) *AnswerTool {
	return &AnswerTool{tracker: tracker, logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *AnswerTool) Definition() mcp.Tool {
	return mcp.NewTool("itra_answer",
		mcp.WithDescription(
			"Record an answer to one ITRA gateway question. Questions are grouped in three phases "+
				"and a phase only accepts answers once every earlier phase is complete. "+
				"Answering a question again replaces the previous answer. "+
				"Returns the updated progress, the live assessment scope and the next question.",
		),
		mcp.WithString("question_id",
			mcp.Required(),
			mcp.Description("Gateway question id: asset_type, B.2, T.6, B.3, S.1, B.13, D.1 or D.2"),
		),
		mcp.WithString("answer",
			mcp.Required(),
			mcp.Description("The answer: a canonical value (e.g. 'Yes', 'it_system', '2') or the option label shown to the user"),
		),
	)
}

// Handle processes the itra_answer tool call.
func (t *AnswerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := gateway.QuestionID(strings.TrimSpace(req.GetString("question_id", "")))
	input := stringArg(req, "answer")

	if id == "" {
		return mcp.NewToolResultError("'question_id' is required"), nil
	}
	if strings.TrimSpace(input) == "" {
		return mcp.NewToolResultError("'answer' is required"), nil
	}

	q, ok := gateway.Lookup(id)
	if !ok {
		ids := make([]string, len(gateway.QuestionOrder))
		for i, qid := range gateway.QuestionOrder {
			ids[i] = string(qid)
		}
		return mcp.NewToolResultError(fmt.Sprintf(
			"Unknown question %q. Valid questions: %s", id, strings.Join(ids, ", "),
		)), nil
	}

	session := t.tracker.Current()
	before := session.Answers.Snapshot()
	if !gateway.IsPhaseUnlocked(before, q.Phase) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Question %s belongs to phase %d (%s), which is still locked. "+
				"Complete the earlier phases first.",
			id, q.Phase, gateway.PhaseTitle(q.Phase),
		)), nil
	}

	value, err := gateway.Normalize(id, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	changed := session.Answers.Set(id, value)
	answers := session.Answers.Snapshot()
	plan := assessment.Evaluate(answers)

	t.logger.Debug("gateway answer recorded",
		zap.String("session", session.ID),
		zap.String("question", string(id)),
		zap.String("value", value),
		zap.Bool("changed", changed),
		zap.Int("total_questions", plan.TotalQuestions),
	)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# ✅ %s recorded\n\n", q.Label)
	fmt.Fprintf(&sb, "**Answer:** %s (`%s`)\n", gateway.Display(id, value), value)
	if !changed {
		sb.WriteString("_Unchanged: this question already had that answer._\n")
	}
	fmt.Fprintf(&sb, "**Progress:** %s\n\n", formatProgress(answers))
	sb.WriteString("## Live Assessment Scope\n\n")
	sb.WriteString(formatPlan(plan))

	if next, ok := nextQuestion(answers); ok {
		sb.WriteString("\n## Next Question\n\n")
		formatQuestion(&sb, next, answers)
	} else {
		sb.WriteString("\n## 🎉 Gateway Complete\n\n")
		sb.WriteString("All gateway questions are answered. Review the plan with `itra_plan` " +
			"or export the configuration with `itra_export`.\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}
