package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/parser"
)

func newParseCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "parse <text-file>",
		Short: "Extract journal entries from free-form transaction text",
		Long: `Parse reads one transaction per line, in the form
"<date> - <description> <amount>", and extracts journal candidates.
Pass "-" to read from stdin. Lines that cannot be parsed are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			var err error
			if args[0] == "-" {
				text, err = io.ReadAll(cmd.InOrStdin())
			} else {
				text, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			result := parser.New(currency).Parse(string(text))
			if len(result.Journals) == 0 {
				return fmt.Errorf("no transactions could be parsed from the input")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", parser.DefaultCurrency, "currency symbol to strip from amounts")

	return cmd
}
