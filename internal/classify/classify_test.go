package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/model"
)

func txn(txnType model.TransactionType, description string) model.Transaction {
	return model.Transaction{
		Date:        "2024-01-01",
		Description: description,
		Amount:      decimal.NewFromInt(100),
		Type:        txnType,
	}
}

func TestTransaction(t *testing.T) {
	tests := []struct {
		name       string
		txn        model.Transaction
		wantDebit  string
		wantCredit string
	}{
		{"income", txn(model.TypeIncome, "Sold goods"), "Cash", "Revenue"},
		{"expense rent", txn(model.TypeExpense, "Paid rent 5000"), "Rent Expense", "Cash"},
		{"expense salary", txn(model.TypeExpense, "Monthly salary"), "Salary Expense", "Cash"},
		{"expense utility", txn(model.TypeExpense, "Utility bill"), "Utility Expense", "Cash"},
		{"expense general", txn(model.TypeExpense, "Stationery"), "General Expense", "Cash"},
		{"expense mixed case", txn(model.TypeExpense, "Paid RENT to landlord"), "Rent Expense", "Cash"},
		{"rent wins over salary", txn(model.TypeExpense, "salary and rent"), "Rent Expense", "Cash"},
		{"asset uses description", txn(model.TypeAsset, "Office Equipment"), "Office Equipment", "Cash"},
		{"liability uses description", txn(model.TypeLiability, "Bank Loan"), "Cash", "Bank Loan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Transaction(tt.txn)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebit, p.Debit)
			assert.Equal(t, tt.wantCredit, p.Credit)
		})
	}
}

func TestTransaction_UnknownType(t *testing.T) {
	_, err := Transaction(txn("Equity", "Owner contribution"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction type")
}

func TestTransaction_Deterministic(t *testing.T) {
	in := txn(model.TypeExpense, "Paid rent and salary")
	first, err := Transaction(in)
	require.NoError(t, err)
	second, err := Transaction(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
