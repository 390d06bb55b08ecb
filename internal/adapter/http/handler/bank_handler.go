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

// BankService defines the behavior needed by BankHandler.
type BankService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.BankAccount, error)
	GetAccount(ctx context.Context, id string) (*domain.BankAccount, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]*domain.BankAccount, error)
	ListTransactions(ctx context.Context, accountID string, limit, offset int) ([]*domain.BankTransaction, error)
	Transfer(ctx context.Context, input usecase.TransferInput) error
	ManualAdjustment(ctx context.Context, input usecase.ManualAdjustmentInput) (*domain.BankAccount, error)
	ArchiveAccount(ctx context.Context, id string) error
}

// BankHandler handles bank account HTTP requests.
type BankHandler struct {
	bankUC BankService
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(bankUC BankService) *BankHandler {
	return &BankHandler{bankUC: bankUC}
}

// CreateAccount creates a new bank account.
func (h *BankHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.bankUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BankAccountFromDomain(account))
}

// GetAccount retrieves a bank account by ID.
func (h *BankHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	account, err := h.bankUC.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get bank account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountFromDomain(account))
}

// ListAccounts lists bank accounts.
func (h *BankHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.bankUC.ListAccounts(r.Context(), limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list bank accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBankAccountsResponse{
		Accounts: dto.BankAccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// ListTransactions lists an account's transaction history.
func (h *BankHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	txns, err := h.bankUC.ListTransactions(r.Context(), id, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBankTransactionsResponse{
		Transactions: dto.BankTransactionsFromDomain(txns),
		Total:        int64(len(txns)),
	})
}

// Transfer moves money between two accounts.
func (h *BankHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.BankTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.bankUC.Transfer(r.Context(), req.ToUseCaseInput()); err != nil {
		writeError(w, mapDomainError(err), "failed to execute transfer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "executed"})
}

// ManualAdjustment applies a manual deposit or withdrawal to an account.
func (h *BankHandler) ManualAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ManualAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.bankUC.ManualAdjustment(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to adjust account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountFromDomain(account))
}

// ArchiveAccount tombstones a bank account with a zero balance.
func (h *BankHandler) ArchiveAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.bankUC.ArchiveAccount(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to archive account", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
