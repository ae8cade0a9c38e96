package main

import (
	"fmt"
	"time"

	"github.com/HendryAvila/itra-gateway/internal/assessment"
	"github.com/HendryAvila/itra-gateway/internal/export"
	"github.com/HendryAvila/itra-gateway/internal/gateway"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportAnswersPath string
	exportFormat      string
	exportDir         string
	exportStartedAt   string
	exportStdout      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the assessment configuration for an answers file",
	Long: `Build the assessment configuration document for an answers file and
write it to the export directory (or stdout with --stdout).

--started-at sets the questionnaire start time (RFC 3339) used for the
duration metadata. It defaults to now.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportAnswersPath, "answers", "", "answers file (YAML or JSON)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "document format: json or yaml (default from config)")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "export directory (default from config)")
	exportCmd.Flags().StringVar(&exportStartedAt, "started-at", "", "questionnaire start time, RFC 3339")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "print the document instead of writing a file")
	_ = exportCmd.MarkFlagRequired("answers")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := cfg.ExportFormat()
	if exportFormat != "" {
		f, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		format = f
	}

	dir := cfg.Export.Dir
	if exportDir != "" {
		dir = exportDir
	}

	startedAt := time.Now()
	if exportStartedAt != "" {
		t, err := time.Parse(time.RFC3339, exportStartedAt)
		if err != nil {
			return fmt.Errorf("invalid --started-at %q: %w", exportStartedAt, err)
		}
		startedAt = t
	}

	answers, err := gateway.ReadAnswersFile(exportAnswersPath)
	if err != nil {
		return err
	}
	plan := assessment.Evaluate(answers)

	exporter := export.NewExporter(dir, format)
	artifact, err := exporter.Export(answers, plan, startedAt)
	if err != nil {
		return err
	}

	if exportStdout {
		_, err := cmd.OutOrStdout().Write(artifact.Data)
		return err
	}

	path, err := exporter.Save(artifact)
	if err != nil {
		return err
	}

	logger.Info("assessment exported",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("total_questions", plan.TotalQuestions),
	)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
