package ledger

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Match the wire format: amounts are bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPost_LazyInitAndBalance(t *testing.T) {
	l := New()
	l.Post("Cash", dec("15000"), decimal.Zero)
	l.Post("Cash", decimal.Zero, dec("5000"))

	a, ok := l.Account("Cash")
	require.True(t, ok)
	assert.True(t, a.Debit.Equal(dec("15000")))
	assert.True(t, a.Credit.Equal(dec("5000")))
	assert.True(t, a.Balance.Equal(dec("10000")))
}

func TestPost_InsertionOrder(t *testing.T) {
	l := New()
	l.Post("Cash", dec("100"), decimal.Zero)
	l.Post("Revenue", decimal.Zero, dec("100"))
	l.Post("Rent Expense", dec("40"), decimal.Zero)
	l.Post("Cash", decimal.Zero, dec("40"))

	// First touch wins the position; a later posting does not move Cash.
	assert.Equal(t, []string{"Cash", "Revenue", "Rent Expense"}, l.Names())
	assert.Equal(t, 3, l.Len())
}

func TestTotals(t *testing.T) {
	l := New()
	l.Post("Cash", dec("150.50"), decimal.Zero)
	l.Post("Revenue", decimal.Zero, dec("150.50"))

	debit, credit := l.Totals()
	assert.True(t, debit.Equal(dec("150.50")))
	assert.True(t, credit.Equal(dec("150.50")))
}

func TestMarshalJSON_PreservesOrder(t *testing.T) {
	l := New()
	l.Post("Zebra", dec("1"), decimal.Zero)
	l.Post("Apple", decimal.Zero, dec("1"))

	out, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Zebra":{"debit":1,"credit":0,"balance":1},"Apple":{"debit":0,"credit":1,"balance":-1}}`,
		string(out))
}

func TestAccount_Missing(t *testing.T) {
	l := New()
	_, ok := l.Account("Nothing")
	assert.False(t, ok)
}
