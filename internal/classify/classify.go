// Package classify maps a transaction's type and description to the
// debit/credit account pair it posts to.
package classify

import (
	"fmt"
	"strings"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/model"
)

// Posting is the account pair a classified transaction posts to.
type Posting struct {
	Debit  string
	Credit string
}

// expenseKeywords maps description keywords to expense accounts. Checked in
// order, first match wins, so "salary and rent" resolves to rent.
var expenseKeywords = []struct {
	keyword string
	account string
}{
	{"rent", "Rent Expense"},
	{"salary", "Salary Expense"},
	{"utility", "Utility Expense"},
}

// defaultExpenseAccount receives expenses matching no keyword.
const defaultExpenseAccount = "General Expense"

// Transaction classifies a single transaction. It is total over the four
// transaction types; any other type is a contract violation by the caller.
func Transaction(t model.Transaction) (Posting, error) {
	switch t.Type {
	case model.TypeIncome:
		return Posting{Debit: "Cash", Credit: "Revenue"}, nil
	case model.TypeExpense:
		return Posting{Debit: expenseAccount(t.Description), Credit: "Cash"}, nil
	case model.TypeAsset:
		// The description doubles as the asset account name.
		return Posting{Debit: t.Description, Credit: "Cash"}, nil
	case model.TypeLiability:
		return Posting{Debit: "Cash", Credit: t.Description}, nil
	}
	return Posting{}, fmt.Errorf("unknown transaction type %q", t.Type)
}

func expenseAccount(description string) string {
	desc := strings.ToLower(description)
	for _, e := range expenseKeywords {
		if strings.Contains(desc, e.keyword) {
			return e.account
		}
	}
	return defaultExpenseAccount
}
