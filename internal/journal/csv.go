// Package journal provides the CSV codec for transaction batches and
// generated journal entries, used by the CLI file path.
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/model"
)

// TransactionsHeader is the expected header of a transactions CSV.
const TransactionsHeader = "date,description,amount,type"

// JournalsHeader is the header written for generated journal CSVs.
const JournalsHeader = "date,debit,credit,amount,narration"

const (
	txnNumFields = 4
	colDate      = 0
	colDesc      = 1
	colAmount    = 2
	colType      = 3
)

// ReadTransactions reads a transactions CSV (header row required) and
// validates every record.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txnNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := unmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func unmarshalTransaction(rec []string) (model.Transaction, error) {
	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	txn := model.Transaction{
		Date:        rec[colDate],
		Description: rec[colDesc],
		Amount:      amount,
		Type:        model.TransactionType(rec[colType]),
	}
	if err := txn.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// WriteJournals writes journal entries as CSV, including the header.
func WriteJournals(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(JournalsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		rec := []string{e.Date, e.DebitAccount, e.CreditAccount, e.Amount.String(), e.Narration}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
