// Package parser extracts journal candidates from free-form transaction
// text. Each line is matched against an ordered rule chain; the first rule
// that matches and yields a positive amount wins, and lines no rule can use
// are dropped without error.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/model"
)

// DefaultCurrency is the symbol stripped from amounts when the caller does
// not specify one.
const DefaultCurrency = "₹"

// Result is the outcome of parsing one block of text.
type Result struct {
	Journals []model.ParsedJournalEntry `json:"journals"`
	Summary  string                     `json:"summary"`
}

// rule is one priority slot in the chain: a line pattern plus an extractor
// that turns the match into a journal candidate. Extractors return false to
// disqualify the match (bad or non-positive amount), which moves evaluation
// to the next rule, not the next line.
type rule struct {
	name    string
	pattern *regexp.Regexp
	extract func(p *Parser, m []string, line string) (model.ParsedJournalEntry, bool)
}

// Lines look like "<date tokens> - <free text>". The separator accepts a
// hyphen or an en-dash.
var (
	saleRe     = regexp.MustCompile(`(?i)^(\d+\s+\w+)\s*[-–]\s*(?:sold|revenue|income)\b.*?([\d,.]+)\s*$`)
	expenseRe  = regexp.MustCompile(`(?i)^(\d+\s+\w+)\s*[-–]\s*(?:paid|expense)\b.*?(?:rent|salary|utilit(?:ies|y)|insurance)\b.*?([\d,.]+)\s*$`)
	purchaseRe = regexp.MustCompile(`(?i)^(\d+\s+\w+)\s*[-–]\s*(?:paid|bought|purchased?)\s+([\w\s]+?)\s+([\d,.]+)\s*$`)
	incomeRe   = regexp.MustCompile(`(?i)^(\d+\s+\w+)\s*[-–]\s*(?:received|income)\b.*?([\d,.]+)\s*$`)
	genericRe  = regexp.MustCompile(`(?i)^(\d+\s+\w+)\s*[-–]\s*([\w\s]+?)\s+([\d,.]+)\s*$`)

	expenseKindRe = regexp.MustCompile(`(?i)rent|salary|utilit(?:ies|y)|insurance`)
)

// expenseAccounts maps an expense keyword to its ledger account.
var expenseAccounts = map[string]string{
	"rent":      "Rent Expense A/c",
	"salary":    "Salary Expense A/c",
	"utility":   "Utilities Expense A/c",
	"utilities": "Utilities Expense A/c",
	"insurance": "Insurance Expense A/c",
}

// rules is the priority order. Keep sale above generic: a line like
// "01 Oct - Sold goods 15000" must post to Sales via the sale rule even
// though the generic shape also matches it.
var rules = []rule{
	{"sale", saleRe, (*Parser).extractSale},
	{"expense", expenseRe, (*Parser).extractExpense},
	{"purchase", purchaseRe, (*Parser).extractPurchase},
	{"income", incomeRe, (*Parser).extractIncome},
	{"generic", genericRe, (*Parser).extractGeneric},
}

// Parser parses transaction text using a fixed rule chain and a currency
// symbol to strip from amounts.
type Parser struct {
	currency string
}

// New creates a Parser. An empty currency falls back to DefaultCurrency.
func New(currency string) *Parser {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Parser{currency: currency}
}

// Parse splits text into lines and runs each through the rule chain.
// Blank lines and lines no rule accepts are skipped silently; the result
// keeps input order.
func (p *Parser) Parse(text string) Result {
	var journals []model.ParsedJournalEntry

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, r := range rules {
			m := r.pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			entry, ok := r.extract(p, m, line)
			if !ok {
				continue
			}
			journals = append(journals, entry)
			break
		}
	}

	return Result{
		Journals: journals,
		Summary:  fmt.Sprintf("💡 Total of %d transactions parsed successfully. All entries balanced.", len(journals)),
	}
}

func (p *Parser) extractSale(m []string, _ string) (model.ParsedJournalEntry, bool) {
	amount, ok := p.cleanAmount(m[2])
	if !ok {
		return model.ParsedJournalEntry{}, false
	}
	return model.ParsedJournalEntry{
		Date:          strings.TrimSpace(m[1]),
		DebitAccount:  "Cash A/c",
		CreditAccount: "Sales A/c",
		Amount:        amount,
		Narration:     "Being goods sold for cash",
	}, true
}

func (p *Parser) extractExpense(m []string, line string) (model.ParsedJournalEntry, bool) {
	amount, ok := p.cleanAmount(m[2])
	if !ok {
		return model.ParsedJournalEntry{}, false
	}
	kind := strings.ToLower(expenseKindRe.FindString(line))
	if kind == "" {
		kind = "expenses"
	}
	account, ok := expenseAccounts[kind]
	if !ok {
		account = "General Expense A/c"
	}
	return model.ParsedJournalEntry{
		Date:          strings.TrimSpace(m[1]),
		DebitAccount:  account,
		CreditAccount: "Cash A/c",
		Amount:        amount,
		Narration:     fmt.Sprintf("Being %s paid", kind),
	}, true
}

func (p *Parser) extractPurchase(m []string, _ string) (model.ParsedJournalEntry, bool) {
	amount, ok := p.cleanAmount(m[3])
	if !ok {
		return model.ParsedJournalEntry{}, false
	}
	description := strings.TrimSpace(m[2])
	if description == "" {
		description = "assets"
	}
	return model.ParsedJournalEntry{
		Date:          strings.TrimSpace(m[1]),
		DebitAccount:  titleCase(description) + " A/c",
		CreditAccount: "Cash A/c",
		Amount:        amount,
		Narration:     fmt.Sprintf("Being %s purchased", strings.ToLower(description)),
	}, true
}

func (p *Parser) extractIncome(m []string, _ string) (model.ParsedJournalEntry, bool) {
	amount, ok := p.cleanAmount(m[2])
	if !ok {
		return model.ParsedJournalEntry{}, false
	}
	return model.ParsedJournalEntry{
		Date:          strings.TrimSpace(m[1]),
		DebitAccount:  "Cash A/c",
		CreditAccount: "Income A/c",
		Amount:        amount,
		Narration:     "Being income received",
	}, true
}

func (p *Parser) extractGeneric(m []string, _ string) (model.ParsedJournalEntry, bool) {
	amount, ok := p.cleanAmount(m[3])
	if !ok {
		return model.ParsedJournalEntry{}, false
	}
	date := strings.TrimSpace(m[1])
	description := strings.TrimSpace(m[2])
	if description == "" {
		description = "transaction"
	}
	lower := strings.ToLower(description)

	switch {
	case strings.Contains(lower, "sold") || strings.Contains(lower, "revenue"):
		return model.ParsedJournalEntry{
			Date:          date,
			DebitAccount:  "Cash A/c",
			CreditAccount: "Sales A/c",
			Amount:        amount,
			Narration:     "Being goods sold for cash",
		}, true
	case strings.Contains(lower, "purchased") || strings.Contains(lower, "bought"):
		return model.ParsedJournalEntry{
			Date:          date,
			DebitAccount:  description + " A/c",
			CreditAccount: "Cash A/c",
			Amount:        amount,
			Narration:     fmt.Sprintf("Being %s purchased", lower),
		}, true
	default:
		return model.ParsedJournalEntry{
			Date:          date,
			DebitAccount:  "Account A/c",
			CreditAccount: "Cash A/c",
			Amount:        amount,
			Narration:     fmt.Sprintf("Being %s transaction", lower),
		}, true
	}
}

// cleanAmount strips the currency symbol and thousands separators, then
// parses the remainder. A parse failure or non-positive value disqualifies
// the rule match.
func (p *Parser) cleanAmount(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(raw, p.currency, "")
	s = strings.ReplaceAll(s, DefaultCurrency, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	amount, err := decimal.NewFromString(s)
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, false
	}
	return amount, true
}

func titleCase(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
