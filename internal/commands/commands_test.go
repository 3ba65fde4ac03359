package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "transactions.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(`date,description,amount,type
2024-01-01,Sold goods,15000,Income
2024-01-02,Paid rent,5000,Expense
`), 0o644))

	journalPath := filepath.Join(dir, "journal.csv")
	out, err := runCommand(t, "report", csvPath, "--journal-csv", journalPath)
	require.NoError(t, err)

	var result struct {
		Journals     []map[string]any `json:"journals"`
		TrialBalance struct {
			Status string `json:"status"`
		} `json:"trial_balance"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Journals, 2)
	assert.Equal(t, "Balanced", result.TrialBalance.Status)

	written, err := os.ReadFile(journalPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "date,debit,credit,amount,narration")
	assert.Contains(t, string(written), "Rent Expense")
}

func TestReportCommand_EmptyFile(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("date,description,amount,type\n"), 0o644))

	_, err := runCommand(t, "report", csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transactions")
}

func TestParseCommand(t *testing.T) {
	textPath := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("01 Oct - Sold goods 15000\nrandom note\n"), 0o644))

	out, err := runCommand(t, "parse", textPath)
	require.NoError(t, err)

	var result struct {
		Journals []map[string]any `json:"journals"`
		Summary  string           `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Journals, 1)
	assert.Equal(t, "Cash A/c", result.Journals[0]["debitAccount"])
	assert.Contains(t, result.Summary, "1 transactions parsed")
}

func TestParseCommand_NothingParsed(t *testing.T) {
	textPath := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("nothing useful here\n"), 0o644))

	_, err := runCommand(t, "parse", textPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transactions could be parsed")
}
