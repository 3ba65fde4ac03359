// Package ledger accumulates per-account debit/credit totals for one
// posting run.
package ledger

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Account holds the running totals for one ledger account.
type Account struct {
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// Ledger is an insertion-ordered map of account name to totals. Accounts are
// created lazily on first posting; output order is first-touch order, which
// keeps report output deterministic.
type Ledger struct {
	order    []string
	accounts map[string]*Account
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Post adds debit and credit deltas to an account and recomputes its balance.
func (l *Ledger) Post(account string, debit, credit decimal.Decimal) {
	a, ok := l.accounts[account]
	if !ok {
		a = &Account{Debit: decimal.Zero, Credit: decimal.Zero, Balance: decimal.Zero}
		l.accounts[account] = a
		l.order = append(l.order, account)
	}
	a.Debit = a.Debit.Add(debit)
	a.Credit = a.Credit.Add(credit)
	a.Balance = a.Debit.Sub(a.Credit)
}

// Account returns the totals for an account name.
func (l *Ledger) Account(name string) (Account, bool) {
	a, ok := l.accounts[name]
	if !ok {
		return Account{}, false
	}
	return *a, true
}

// Names returns account names in insertion order.
func (l *Ledger) Names() []string {
	return l.order
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	return len(l.order)
}

// Totals returns the grand debit and credit totals across all accounts.
func (l *Ledger) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, name := range l.order {
		a := l.accounts[name]
		debit = debit.Add(a.Debit)
		credit = credit.Add(a.Credit)
	}
	return debit, credit
}

// MarshalJSON emits a JSON object with keys in insertion order. The stdlib
// map marshaller sorts keys, which would break first-touch ordering.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range l.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(l.accounts[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
