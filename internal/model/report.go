package model

import "github.com/shopspring/decimal"

// Trial balance statuses.
const (
	StatusBalanced   = "Balanced"
	StatusUnbalanced = "Unbalanced"
)

// TrialBalance sums debits and credits across every ledger account.
type TrialBalance struct {
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Status      string          `json:"status"`
}

// ProfitAndLoss summarizes income against expense for one batch. Only
// Income/Expense transactions contribute; Asset/Liability postings do not.
type ProfitAndLoss struct {
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	NetProfit decimal.Decimal `json:"net_profit"`
}
