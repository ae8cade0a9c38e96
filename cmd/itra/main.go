// itra: IT Risk Assessment gateway
//
// Scopes a pharmaceutical/healthcare IT risk assessment from eight
// gateway questions, either interactively through an MCP host or in
// batch from an answers file.
//
// Usage:
//
//	itra serve                          # Start MCP server (stdio transport)
//	itra plan --answers answers.yaml    # Print the assessment plan
//	itra export --answers answers.yaml  # Write the assessment configuration
//	itra version
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/itra-gateway/internal/config"
	"github.com/HendryAvila/itra-gateway/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "itra",
	Short: "ITRA gateway - IT Risk Assessment scoping",
	Long: `itra scopes an IT Risk Assessment from eight gateway questions.

The answers decide which of eight assessment tracks apply and how many
detailed questions each contributes. Run "itra serve" to drive the
questionnaire from an MCP host, or use "itra plan" and "itra export"
with an answers file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}

		logger, err = logging.New(cfg.Logging.Level)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.itra/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd, planCmd, exportCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
