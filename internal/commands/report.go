package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/journal"
	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/posting"
)

func newReportCommand() *cobra.Command {
	var journalOut string

	cmd := &cobra.Command{
		Use:   "report <transactions.csv>",
		Short: "Generate journals, ledgers, trial balance, and P&L from a transactions CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening transactions: %w", err)
			}
			defer f.Close()

			txns, err := journal.ReadTransactions(f)
			if err != nil {
				return fmt.Errorf("reading transactions: %w", err)
			}
			if len(txns) == 0 {
				return fmt.Errorf("no transactions in %s", args[0])
			}

			out, err := posting.Generate(txns)
			if err != nil {
				return fmt.Errorf("generating reports: %w", err)
			}

			if journalOut != "" {
				jf, err := os.Create(journalOut)
				if err != nil {
					return fmt.Errorf("creating journal CSV: %w", err)
				}
				defer jf.Close()
				if err := journal.WriteJournals(jf, out.Journals); err != nil {
					return fmt.Errorf("writing journal CSV: %w", err)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&journalOut, "journal-csv", "", "also write the journal as CSV to this path")

	return cmd
}
