package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "travelease/pkg/errors"
	"travelease/pkg/logger"
	"travelease/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockListingService struct {
	countFunc func(ctx context.Context) (int64, error)
}

func (m *mockListingService) Create(ctx context.Context, listing *model.Listing) error {
	return nil
}

func (m *mockListingService) GetAll(ctx context.Context) ([]*model.Listing, error) {
	return []*model.Listing{}, nil
}

func (m *mockListingService) GetLatest(ctx context.Context) ([]*model.Listing, error) {
	return []*model.Listing{}, nil
}

func (m *mockListingService) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	return nil, apperrors.NotFound("Product")
}

func (m *mockListingService) Update(ctx context.Context, id string, fields map[string]any) (*model.Listing, error) {
	return nil, apperrors.NotFound("Product")
}

func (m *mockListingService) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockListingService) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func newTestRouter(listings *mockListingService) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	router := httprouter.New()
	NewStatusHandler(nil, listings, log).RegisterRoutes(router)
	return router
}

func TestRoot_ReturnsLivenessText(t *testing.T) {
	router := newTestRouter(&mockListingService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "TravelEase server is running!" {
		t.Errorf("unexpected body: %q", body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain content type, got %q", ct)
	}
}

func TestTest_ReportsStoreCount(t *testing.T) {
	router := newTestRouter(&mockListingService{
		countFunc: func(ctx context.Context) (int64, error) {
			return 12, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body TestResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "DB Connected!" {
		t.Errorf("expected 'DB Connected!', got %q", body.Message)
	}
	if body.Count != 12 {
		t.Errorf("expected count 12, got %d", body.Count)
	}
}

func TestTest_StoreFailureIs500(t *testing.T) {
	router := newTestRouter(&mockListingService{
		countFunc: func(ctx context.Context) (int64, error) {
			return 0, apperrors.Internal("Failed to count products", nil)
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Failed to count products" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestHealth_AlwaysOK(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	router := httprouter.New()
	NewStatusHandler(nil, &mockListingService{}, log).RegisterHealthRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", body.Status)
	}
}
