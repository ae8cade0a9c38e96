package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// ResetTool handles the itra_reset MCP tool.
// It discards the active session and starts a new questionnaire.
type ResetTool struct {
	tracker *gateway.Tracker
	logger  *zap.Logger
}

// NewResetTool creates a ResetTool.
func NewResetTool(tracker *gateway.Tracker, logger *zap.Logger) *ResetTool {
	return &ResetTool{tracker: tracker, logger: logger}
}

// Definition returns the MCP tool definition for registration.
func (t *ResetTool) Definition() mcp.Tool {
	return mcp.NewTool("itra_reset",
		mcp.WithDescription(
			"Start a new ITRA gateway questionnaire. All answers in the current session are "+
				"discarded. Export first if they need to be kept.",
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to discard the current answers"),
		),
	)
}

// Handle processes the itra_reset tool call.
func (t *ResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !boolArg(req, "confirm", false) {
		return mcp.NewToolResultError("Reset not confirmed. Pass confirm=true to discard the current answers."), nil
	}

	old := t.tracker.Current()
	discarded := old.Answers.Len()
	session := t.tracker.Reset()

	t.logger.Info("gateway session reset",
		zap.String("previous", old.ID),
		zap.String("session", session.ID),
		zap.Int("discarded_answers", discarded),
	)

	return mcp.NewToolResultText(fmt.Sprintf(
		"# 🔄 New Questionnaire Started\n\n"+
			"**Session:** `%s`\n"+
			"**Discarded answers:** %d\n\n"+
			"Start with the asset type question. Use `itra_questions` to see it.\n",
		session.ID, discarded,
	)), nil
}
