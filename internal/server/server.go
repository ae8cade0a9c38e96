// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the shared session tracker
// and exporter and injects them into the tools, prompts and resources.
// No business logic lives here, only wiring.
package server

import (
	"context"
	"fmt"

	"github.com/HendryAvila/itra-gateway/internal/config"
	"github.com/HendryAvila/itra-gateway/internal/export"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/HendryAvila/itra-gateway/internal/prompts"
	"github.com/HendryAvila/itra-gateway/internal/resources"
	"github.com/HendryAvila/itra-gateway/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
func New(cfg *config.Config, logger *zap.Logger) (*server.MCPServer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// --- Create shared dependencies ---

	tracker := gateway.NewTracker()
	exporter := export.NewExporter(cfg.Export.Dir, cfg.ExportFormat())

	logger.Info("gateway session started",
		zap.String("session", tracker.Current().ID),
		zap.String("export_dir", exporter.Dir),
		zap.String("export_format", string(exporter.Format)),
	)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"itra-gateway",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithHooks(loggingHooks(logger)),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register gateway tools ---

	answerTool := tools.NewAnswerTool(tracker, logger)
	s.AddTool(answerTool.Definition(), answerTool.Handle)

	questionsTool := tools.NewQuestionsTool(tracker)
	s.AddTool(questionsTool.Definition(), questionsTool.Handle)

	statusTool := tools.NewStatusTool(tracker)
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	planTool := tools.NewPlanTool(tracker)
	s.AddTool(planTool.Definition(), planTool.Handle)

	exportTool := tools.NewExportTool(tracker, exporter, logger)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	resetTool := tools.NewResetTool(tracker, logger)
	s.AddTool(resetTool.Definition(), resetTool.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(tracker)
	s.AddResource(resourceHandler.PlanResource(), resourceHandler.HandlePlan)
	s.AddResource(resourceHandler.AnswersResource(), resourceHandler.HandleAnswers)
	s.AddResource(resourceHandler.QuestionsResource(), resourceHandler.HandleQuestions)

	return s, nil
}

// loggingHooks logs every tool call and every request error.
func loggingHooks(logger *zap.Logger) *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddBeforeCallTool(func(ctx context.Context, id any, message *mcp.CallToolRequest) {
		logger.Debug("tool call", zap.String("tool", message.Params.Name), zap.Any("request_id", id))
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.Warn("request failed", zap.String("method", string(method)), zap.Any("request_id", id), zap.Error(err))
	})
	return hooks
}

// serverInstructions returns the system instructions that tell the AI
// how to run the gateway questionnaire.
func serverInstructions() string {
	return `You have access to the ITRA gateway, an MCP server that scopes IT Risk Assessments
for pharmaceutical and healthcare technology.

## WHAT IT DOES

Eight gateway questions decide which assessment tracks apply to a technology
solution and how many detailed questions each one contributes. The result is an
assessment plan and an exportable configuration document.

## HOW TO RUN THE QUESTIONNAIRE

Questions are asked in three phases. A phase only accepts answers once every
earlier phase is complete.

1. What Are We Assessing? (asset_type)
2. Major Risk Categories (B.2 regulated, T.6 AI, B.3 patient safety)
3. Context & Scope (S.1 connectivity, B.13 business impact, D.1 data entry, D.2 data processing)

Workflow:
1. Call itra_questions to get the wording, options and help text for the current phase
2. Ask the user ONE question at a time in plain language; offer the help text when they are unsure
3. Record each answer with itra_answer. Either the canonical value or the option label works
4. Share the live scope that itra_answer returns so the user sees the effect of each answer
5. When all eight are answered, summarize with itra_plan
6. Export with itra_export (json or yaml). Exports can be repeated; answers never change
7. To begin a new assessment, call itra_reset with confirm=true

NEVER guess an answer the user has not given. If the user is unsure, use the quick
reference below and confirm before recording.

## QUICK REFERENCE

` + prompts.QuickReference + `
## RESOURCES

- itra://assessment/plan: live plan as JSON
- itra://assessment/answers: session answers and progress as JSON
- itra://gateway/questions: the full question catalog as JSON
`
}
