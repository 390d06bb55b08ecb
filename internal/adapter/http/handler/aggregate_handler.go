package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/shopledger/internal/adapter/http/dto"
	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

// AggregateService defines the behavior needed by AggregateHandler.
type AggregateService interface {
	GetAggregate(ctx context.Context, resource domain.AggregateResource) (*domain.AggregateStock, error)
	ListMovements(ctx context.Context, resource domain.AggregateResource, limit, offset int) ([]*domain.AggregateMovement, error)
	PurchaseAggregate(ctx context.Context, input usecase.PurchaseAggregateInput) (*domain.AggregateMovement, error)
	ConsumeAggregate(ctx context.Context, input usecase.ConsumeAggregateInput) (*domain.AggregateMovement, error)
}

// AggregateHandler handles scrap and acid stock HTTP requests.
type AggregateHandler struct {
	aggUC AggregateService
}

// NewAggregateHandler creates a new AggregateHandler.
func NewAggregateHandler(aggUC AggregateService) *AggregateHandler {
	return &AggregateHandler{aggUC: aggUC}
}

// Get retrieves the running totals of a resource.
func (h *AggregateHandler) Get(w http.ResponseWriter, r *http.Request) {
	resource := domain.AggregateResource(r.URL.Query().Get("resource"))

	agg, err := h.aggUC.GetAggregate(r.Context(), resource)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get aggregate stock", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AggregateFromDomain(agg))
}

// ListMovements lists the movement history of a resource.
func (h *AggregateHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	resource := domain.AggregateResource(r.URL.Query().Get("resource"))
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	movements, err := h.aggUC.ListMovements(r.Context(), resource, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}

// Purchase adds quantity and value to a resource.
func (h *AggregateHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseAggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movement, err := h.aggUC.PurchaseAggregate(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record aggregate purchase", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// Consume removes quantity and value from a resource.
func (h *AggregateHandler) Consume(w http.ResponseWriter, r *http.Request) {
	var req dto.ConsumeAggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movement, err := h.aggUC.ConsumeAggregate(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record aggregate consumption", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}
