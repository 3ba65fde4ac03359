// Package posting runs the double-entry engine: it classifies each
// transaction, builds the journal, aggregates ledgers, and compiles the
// trial balance and P&L for the batch.
package posting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/classify"
	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/ledger"
	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/model"
)

// AccountingOutput is the full result of one posting run. It is recomputed
// from scratch on every invocation.
type AccountingOutput struct {
	Journals     []model.JournalEntry `json:"journals"`
	Ledgers      *ledger.Ledger       `json:"ledgers"`
	TrialBalance model.TrialBalance   `json:"trial_balance"`
	PAndL        model.ProfitAndLoss  `json:"p_and_l"`
}

// balanceTolerance absorbs rounding drift when comparing debit and credit
// grand totals. Strictly less-than, per the trial balance contract.
var balanceTolerance = decimal.RequireFromString("0.01")

// Generate posts every transaction in input order and compiles the reports.
// Each transaction contributes exactly one journal entry, one debit leg, and
// one credit leg of the same amount, so the ledger always balances.
func Generate(txns []model.Transaction) (*AccountingOutput, error) {
	journals := make([]model.JournalEntry, 0, len(txns))
	led := ledger.New()
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for i, t := range txns {
		p, err := classify.Transaction(t)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}

		switch t.Type {
		case model.TypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
		case model.TypeExpense:
			totalExpense = totalExpense.Add(t.Amount)
		}

		journals = append(journals, model.JournalEntry{
			Date:          t.Date,
			DebitAccount:  p.Debit,
			CreditAccount: p.Credit,
			Amount:        t.Amount,
			Narration:     t.Description,
		})

		led.Post(p.Debit, t.Amount, decimal.Zero)
		led.Post(p.Credit, decimal.Zero, t.Amount)
	}

	return &AccountingOutput{
		Journals:     journals,
		Ledgers:      led,
		TrialBalance: trialBalance(led),
		PAndL: model.ProfitAndLoss{
			Income:    totalIncome,
			Expense:   totalExpense,
			NetProfit: totalIncome.Sub(totalExpense),
		},
	}, nil
}

func trialBalance(led *ledger.Ledger) model.TrialBalance {
	totalDebit, totalCredit := led.Totals()
	status := model.StatusUnbalanced
	if totalDebit.Sub(totalCredit).Abs().LessThan(balanceTolerance) {
		status = model.StatusBalanced
	}
	return model.TrialBalance{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Status:      status,
	}
}
