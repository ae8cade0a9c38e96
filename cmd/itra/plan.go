package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/HendryAvila/itra-gateway/internal/assessment"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	planAnswersPath string
	planJSON        bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the assessment plan for an answers file",
	Long: `Print the assessment plan implied by a YAML or JSON answers file.

The file maps gateway question ids to answers, for example:

  asset_type: it_system
  B.2: "Yes"
  S.1: 2

Missing questions count as not applicable.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planAnswersPath, "answers", "", "answers file (YAML or JSON)")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "print the plan as JSON")
	_ = planCmd.MarkFlagRequired("answers")
}

func runPlan(cmd *cobra.Command, args []string) error {
	answers, err := gateway.ReadAnswersFile(planAnswersPath)
	if err != nil {
		return err
	}

	plan := assessment.Evaluate(answers)
	logger.Debug("plan evaluated",
		zap.String("answers", planAnswersPath),
		zap.Int("enabled_tracks", plan.EnabledTracks),
		zap.Int("total_questions", plan.TotalQuestions),
	)

	out := cmd.OutOrStdout()
	if planJSON {
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling plan: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	printPlan(out, answers, plan)
	return nil
}

// printPlan writes a human-readable plan.
func printPlan(w io.Writer, answers gateway.Answers, plan assessment.Plan) {
	fmt.Fprintln(w, "Gateway answers:")
	if len(answers) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, id := range answers.Answered() {
		fmt.Fprintf(w, "  %-24s %s\n", gateway.Label(id)+":", gateway.Display(id, answers[id]))
	}
	if !gateway.IsGatewayComplete(answers) {
		fmt.Fprintln(w, "  (incomplete: unanswered questions count as not applicable)")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assessment tracks:")
	for _, p := range plan.Paths {
		mark := " "
		if p.Enabled {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %-40s %3d\n", mark, p.Name, p.QuestionCount)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Enabled tracks:  %d\n", plan.EnabledTracks)
	fmt.Fprintf(w, "Total questions: %d\n", plan.TotalQuestions)
	fmt.Fprintf(w, "Estimated time:  %s minutes\n", plan.EstimatedMinutes)
}
