package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/model"
	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/parser"
	"github.com/sahilv151325-hash/ACCOUNTS.IO/internal/posting"
)

// Error messages fixed by the API contract.
const (
	errNoTransactions = "No transactions provided"
	errNoText         = "No transaction text provided"
	errNothingParsed  = "No transactions could be parsed from the input"
	errGenerateFailed = "Failed to generate accounting reports"
	errParseFailed    = "Failed to parse transactions"
)

// Handlers serves the two accounting endpoints.
type Handlers struct {
	defaultCurrency string
	log             zerolog.Logger
}

// NewHandlers creates the accounting API handlers. defaultCurrency is used
// when a parse request does not name one.
func NewHandlers(defaultCurrency string, log zerolog.Logger) *Handlers {
	if defaultCurrency == "" {
		defaultCurrency = parser.DefaultCurrency
	}
	return &Handlers{
		defaultCurrency: defaultCurrency,
		log:             log.With().Str("component", "handlers").Logger(),
	}
}

// RegisterRoutes registers the accounting routes.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/generate-accounts", h.HandleGenerateAccounts)
	r.Post("/parse-transactions", h.HandleParseTransactions)
}

type generateRequest struct {
	Transactions []model.Transaction `json:"transactions"`
}

// HandleGenerateAccounts produces journals, ledgers, trial balance, and P&L
// for a batch of structured transactions.
func (h *Handlers) HandleGenerateAccounts(w http.ResponseWriter, r *http.Request) {
	defer h.recoverTo(w, errGenerateFailed)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoTransactions)
		return
	}
	if len(req.Transactions) == 0 {
		writeError(w, http.StatusBadRequest, errNoTransactions)
		return
	}
	for i, txn := range req.Transactions {
		if err := txn.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("transaction %d: %v", i+1, err))
			return
		}
	}

	out, err := posting.Generate(req.Transactions)
	if err != nil {
		h.log.Error().Err(err).Msg("generating accounting reports")
		writeError(w, http.StatusInternalServerError, errGenerateFailed)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

type parseRequest struct {
	Text     string `json:"text"`
	Currency string `json:"currency"`
}

// HandleParseTransactions extracts journal candidates from free-form text.
func (h *Handlers) HandleParseTransactions(w http.ResponseWriter, r *http.Request) {
	defer h.recoverTo(w, errParseFailed)

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoText)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, errNoText)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = h.defaultCurrency
	}

	result := parser.New(currency).Parse(req.Text)
	if len(result.Journals) == 0 {
		writeError(w, http.StatusBadRequest, errNothingParsed)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// recoverTo converts a handler panic into the endpoint's documented 500
// payload without leaking the original failure to the caller.
func (h *Handlers) recoverTo(w http.ResponseWriter, message string) {
	if rec := recover(); rec != nil {
		h.log.Error().Interface("panic", rec).Msg("handler panicked")
		writeError(w, http.StatusInternalServerError, message)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
