package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// StatementService defines the behavior needed for statements.
type StatementService interface {
	GetStatement(ctx context.Context, partyID string) (*usecase.Statement, error)
}

// ConsistencyService defines the behavior needed for consistency sweeps.
type ConsistencyService interface {
	GenerateReport(ctx context.Context) (*usecase.ReconciliationReport, error)
}

// CashSessionService defines the behavior needed for drawer reconciliation.
type CashSessionService interface {
	Reconcile(ctx context.Context, input usecase.ReconcileInput) (*domain.CashReconciliation, error)
}

// LedgerHandler handles statement, consistency, and cash session requests.
type LedgerHandler struct {
	statementUC   StatementService
	consistencyUC ConsistencyService
	cashUC        CashSessionService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(statementUC StatementService, consistencyUC ConsistencyService, cashUC CashSessionService) *LedgerHandler {
	return &LedgerHandler{
		statementUC:   statementUC,
		consistencyUC: consistencyUC,
		cashUC:        cashUC,
	}
}

// Statement builds a party statement with running balances, newest first.
func (h *LedgerHandler) Statement(w http.ResponseWriter, r *http.Request) {
	partyID := chi.URLParam(r, "id")

	statement, err := h.statementUC.GetStatement(r.Context(), partyID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

// Consistency replays every balance in the system and reports discrepancies.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	report, err := h.consistencyUC.GenerateReport(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate consistency report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportFromUseCase(report))
}

// ReconcileCash closes the drawer: expected closing from the day's ledger
// against the counted denominations.
func (h *LedgerHandler) ReconcileCash(w http.ResponseWriter, r *http.Request) {
	var req dto.ReconcileCashRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.cashUC.Reconcile(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile cash session", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashReconciliationFromDomain(result))
}
