package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/usecase"
)

// SaleService defines the behavior needed by SaleHandler.
type SaleService interface {
	RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*usecase.RecordSaleOutput, error)
}

// PurchaseService defines the behavior needed by PurchaseHandler.
type PurchaseService interface {
	RecordPurchase(ctx context.Context, input usecase.RecordPurchaseInput) (*usecase.RecordPurchaseOutput, error)
}

// SaleHandler handles sale HTTP requests.
type SaleHandler struct {
	saleUC SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleUC SaleService) *SaleHandler {
	return &SaleHandler{saleUC: saleUC}
}

// Record records a sale to a customer.
func (h *SaleHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	out, err := h.saleUC.RecordSale(r.Context(), req.ToUseCaseInput(r.Header.Get(IdempotencyKeyHeader)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record sale", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SaleFromOutput(out))
}

// PurchaseHandler handles purchase HTTP requests.
type PurchaseHandler struct {
	purchaseUC PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseUC PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: purchaseUC}
}

// Record records a purchase from a dealer.
func (h *PurchaseHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	out, err := h.purchaseUC.RecordPurchase(r.Context(), req.ToUseCaseInput(r.Header.Get(IdempotencyKeyHeader)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record purchase", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PurchaseFromOutput(out))
}
