package main

import (
	"fmt"

	itraserver "github.com/HendryAvila/itra-gateway/internal/server"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "itra v%s\n", itraserver.Version)
		return err
	},
}
