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

// StockService defines the behavior needed by StockHandler.
type StockService interface {
	CreateStockItem(ctx context.Context, input usecase.CreateStockItemInput) (*domain.StockItem, error)
	GetStockItem(ctx context.Context, id string) (*domain.StockItem, error)
	ListStockItems(ctx context.Context, kind domain.StockItemKind, limit, offset int) ([]*domain.StockItem, error)
	UpdateStockItem(ctx context.Context, id string, input usecase.UpdateStockItemInput) (*domain.StockItem, error)
}

// StockHandler handles stock catalog HTTP requests.
type StockHandler struct {
	stockUC StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockUC StockService) *StockHandler {
	return &StockHandler{stockUC: stockUC}
}

// Create adds a catalog item with zero stock.
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStockItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	item, err := h.stockUC.CreateStockItem(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create stock item", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.StockItemFromDomain(item))
}

// Get retrieves a stock item by ID.
func (h *StockHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.stockUC.GetStockItem(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get stock item", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockItemFromDomain(item))
}

// List lists stock items of one kind.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := domain.StockItemKind(r.URL.Query().Get("kind"))
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	items, err := h.stockUC.ListStockItems(r.Context(), kind, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list stock items", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListStockItemsResponse{
		Items: dto.StockItemsFromDomain(items),
		Total: int64(len(items)),
	})
}

// Update updates catalog details. Stock counts only move through sales and
// purchases.
func (h *StockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateStockItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	item, err := h.stockUC.UpdateStockItem(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update stock item", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockItemFromDomain(item))
}
