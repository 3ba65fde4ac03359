package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// API responses carry amounts as bare JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType classifies a transaction for double-entry posting.
type TransactionType string

const (
	TypeIncome    TransactionType = "Income"
	TypeExpense   TransactionType = "Expense"
	TypeAsset     TransactionType = "Asset"
	TypeLiability TransactionType = "Liability"
)

// Valid reports whether t is one of the four posting types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeAsset, TypeLiability:
		return true
	}
	return false
}

// Transaction is a single structured input record. It is immutable once
// created; the engine never mutates it.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
}

// Validate checks the posting contract: a known type and a positive amount.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", t.Amount)
	}
	return nil
}
