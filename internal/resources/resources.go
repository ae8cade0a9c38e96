// Package resources implements MCP resource handlers for the ITRA gateway.
//
// Resources provide read-only JSON views of the active session that the
// host can consume for context. They use itra:// URIs.
package resources

import (
	"context"
	"time"

	"github.com/HendryAvila/itra-gateway/internal/assessment"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs.
const (
	PlanURI      = "itra://assessment/plan"
	AnswersURI   = "itra://assessment/answers"
	QuestionsURI = "itra://gateway/questions"
)

// Handler manages ITRA resource endpoints.
type Handler struct {
	tracker *gateway.Tracker
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(tracker *gateway.Tracker) *Handler {
	return &Handler{tracker: tracker}
}

// planView is the JSON shape of the plan resource.
type planView struct {
	Complete  bool              `json:"gateway_complete"`
	Plan      assessment.Plan   `json:"plan"`
	Breakdown []assessment.Path `json:"breakdown"`
}

// answersView is the JSON shape of the answers resource.
type answersView struct {
	SessionID string           `json:"session_id"`
	StartedAt time.Time        `json:"started_at"`
	Answers   gateway.Answers  `json:"answers"`
	Progress  gateway.Progress `json:"progress"`
	Complete  bool             `json:"gateway_complete"`
}

// PlanResource returns the MCP resource definition for the live plan.
func (h *Handler) PlanResource() mcp.Resource {
	return mcp.NewResource(
		PlanURI,
		"ITRA Assessment Plan",
		mcp.WithResourceDescription("Assessment tracks, question counts and time estimate for the current answers"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandlePlan returns the live plan as JSON.
func (h *Handler) HandlePlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	answers := h.tracker.Current().Answers.Snapshot()
	plan := assessment.Evaluate(answers)

	breakdown := plan.Breakdown()
	if breakdown == nil {
		breakdown = []assessment.Path{}
	}

	return jsonResource(req.Params.URI, planView{
		Complete:  gateway.IsGatewayComplete(answers),
		Plan:      plan,
		Breakdown: breakdown,
	})
}

// AnswersResource returns the MCP resource definition for the session answers.
func (h *Handler) AnswersResource() mcp.Resource {
	return mcp.NewResource(
		AnswersURI,
		"ITRA Gateway Answers",
		mcp.WithResourceDescription("Gateway answers recorded in the current session, with phase progress"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleAnswers returns the session answers as JSON.
func (h *Handler) HandleAnswers(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	session := h.tracker.Current()
	answers := session.Answers.Snapshot()

	return jsonResource(req.Params.URI, answersView{
		SessionID: session.ID,
		StartedAt: session.StartedAt,
		Answers:   answers,
		Progress:  gateway.ProgressOf(answers),
		Complete:  gateway.IsGatewayComplete(answers),
	})
}

// QuestionsResource returns the MCP resource definition for the catalog.
func (h *Handler) QuestionsResource() mcp.Resource {
	return mcp.NewResource(
		QuestionsURI,
		"ITRA Gateway Questions",
		mcp.WithResourceDescription("The gateway question catalog: phases, prompts, guidance and options"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleQuestions returns the question catalog as JSON.
func (h *Handler) HandleQuestions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, gateway.Questions())
}
