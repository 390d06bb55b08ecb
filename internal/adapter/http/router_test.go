package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/shopledger/internal/adapter/http/handler"
	"github.com/iho/shopledger/internal/domain"
	"github.com/iho/shopledger/internal/usecase"
)

type stubPartyService struct {
	party *domain.Party
	err   error
}

func (s *stubPartyService) CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error) {
	return s.party, s.err
}

func (s *stubPartyService) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return s.party, s.err
}

func (s *stubPartyService) ListParties(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Party{s.party}, nil
}

func (s *stubPartyService) UpdateParty(ctx context.Context, id string, input usecase.UpdatePartyInput) (*domain.Party, error) {
	return s.party, s.err
}

func (s *stubPartyService) ArchiveParty(ctx context.Context, id string) error {
	return s.err
}

func newTestRouter(partySvc handler.PartyService) http.Handler {
	return NewRouter(RouterConfig{
		PartyHandler:  handler.NewPartyHandler(partySvc),
		HealthHandler: handler.NewHealthHandler(nil, nil),
	})
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubPartyService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRouterPartyRoutes(t *testing.T) {
	svc := &stubPartyService{
		party: &domain.Party{
			ID:      "P1",
			Kind:    domain.PartyCustomer,
			Name:    "Asha Traders",
			Balance: decimal.Zero,
			Status:  domain.PartyActive,
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parties/P1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Asha Traders") {
		t.Fatalf("expected party in response, got %s", rr.Body.String())
	}
}

func TestRouterMapsNotFound(t *testing.T) {
	router := newTestRouter(&stubPartyService{err: domain.ErrPartyNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/parties/missing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
