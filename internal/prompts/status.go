package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the itra-status MCP prompt.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("itra-status",
		mcp.WithPromptDescription(
			"Check where the current ITRA gateway questionnaire stands and what scope it implies.",
		),
	)
}

// Handle processes the itra-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "ITRA gateway status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Show me where my IT Risk Assessment gateway stands.\n\n" +
						"Please:\n" +
						"1. Run `itra_status` and summarize my progress and answers\n" +
						"2. Run `itra_plan` and explain which assessment tracks are enabled and why\n" +
						"3. If questions remain, ask me the next one; otherwise offer to export",
				),
			},
		},
	}, nil
}
