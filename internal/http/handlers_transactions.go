package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

type transactionResponse struct {
	Transaction core.Transaction `json:"transaction"`
	Message     string           `json:"message"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, _ *http.Request) {
	txs := s.ledger.Transactions()
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in core.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tx, err := s.ledger.Add(r.Context(), in)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to add transaction", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	msg := "Expense added successfully"
	if tx.Type == core.Income {
		msg = "Income added successfully"
	}
	writeJSON(w, http.StatusCreated, transactionResponse{Transaction: tx, Message: msg})
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch core.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tx, err := s.ledger.Edit(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			writeError(w, http.StatusNotFound, "transaction not found")
		case isValidationError(err):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Failed to update transaction", "error", err, "id", id)
			writeError(w, http.StatusInternalServerError, "failed to save transaction")
		}
		return
	}

	writeJSON(w, http.StatusOK, transactionResponse{
		Transaction: tx,
		Message:     "Transaction updated successfully",
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	removed, err := s.ledger.Remove(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			// Deleting something already gone is a success for the caller.
			writeJSON(w, http.StatusOK, messageResponse{Message: "Transaction deleted successfully"})
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete transaction", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	msg := "Expense deleted successfully"
	if removed.Type == core.Income {
		msg = "Income deleted successfully"
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrInvalidAmount,
		core.ErrInvalidDate,
		core.ErrInvalidType,
		core.ErrInvalidCategory,
		core.ErrInvalidCurrency,
		core.ErrEmptyDescription,
		core.ErrDescriptionTooLong,
		core.ErrEmptyName,
		core.ErrEmptyEmail,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
