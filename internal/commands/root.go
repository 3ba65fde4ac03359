// Package commands wires the accountsio CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "accountsio",
		Short:   "Double-entry bookkeeping for small business transactions",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "accountsio.yaml", "path to config file")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newParseCommand())

	return rootCmd
}
