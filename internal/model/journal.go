package model

import "github.com/shopspring/decimal"

// JournalEntry is one posted double-entry: a debit and a credit of equal
// amount. Exactly one is produced per input transaction.
type JournalEntry struct {
	Date          string          `json:"date"`
	DebitAccount  string          `json:"debit"`
	CreditAccount string          `json:"credit"`
	Amount        decimal.Decimal `json:"amount"`
	Narration     string          `json:"narration"`
}

// ParsedJournalEntry is a journal candidate extracted from free text. Same
// content as JournalEntry, but it has not been posted to any ledger yet, so
// it keeps the parser's wire shape.
type ParsedJournalEntry struct {
	Date          string          `json:"date"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"`
	Narration     string          `json:"narration"`
}
