// Package prompts implements MCP prompt handlers for the ITRA gateway.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// QuickReference is the tie-break guidance for uncertain answers.
const QuickReference = "**When in doubt:**\n" +
	"- **Regulation**: if pharma-related, answer Yes\n" +
	"- **Patient Safety**: if there is any patient connection, answer Yes\n" +
	"- **AI**: if it does anything \"smart\", answer Yes\n" +
	"- **Impact**: if you'd panic if it failed, answer High\n" +
	"- **Connectivity**: if there is remote access, answer Multiple Networks\n"

// StartPrompt handles the itra-start MCP prompt.
// It guides the AI through the gateway questionnaire from the beginning.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("itra-start",
		mcp.WithPromptDescription(
			"Start an IT Risk Assessment gateway questionnaire. "+
				"Walks through the eight gateway questions phase by phase "+
				"and ends with an exported assessment configuration.",
		),
		mcp.WithArgument("solution",
			mcp.ArgumentDescription("Name of the technology solution being assessed"),
		),
	)
}

// Handle processes the itra-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	solution := "my solution"
	if args := req.Params.Arguments; args != nil {
		if name, ok := args["solution"]; ok && name != "" {
			solution = name
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Start ITRA gateway: %s", solution),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to scope an IT Risk Assessment for '%s'.\n\n"+
						"Please:\n"+
						"1. Run `itra_questions` with phase=1 and ask me the asset type question in plain language\n"+
						"2. Record each of my answers with `itra_answer`, one question at a time\n"+
						"3. Move to the next phase only when the current one is complete; show me the live scope as it changes\n"+
						"4. When all eight questions are answered, summarize the plan with `itra_plan`\n"+
						"5. Ask whether I want JSON or YAML, then run `itra_export`\n\n"+
						"Show me the help text for a question whenever I'm unsure.\n\n"+
						"%s",
					solution, QuickReference,
				)),
			},
		},
	}, nil
}
