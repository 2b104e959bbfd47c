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

type mockBookingService struct {
	createFunc func(ctx context.Context, booking *model.Booking) error
	getAllFunc func(ctx context.Context, userEmail string) ([]*model.Booking, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingService) GetAll(ctx context.Context, userEmail string) ([]*model.Booking, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, userEmail)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBookingService) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func newTestRouter(svc *mockBookingService) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	router := httprouter.New()
	NewBookingHandler(svc, log).RegisterRoutes(router)
	return router
}

func TestCreate_ReturnsAcknowledgement(t *testing.T) {
	router := newTestRouter(&mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			booking.ID = "bbbbbbbbbbbbbbbbbbbbbbbb"
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/bookings",
		strings.NewReader(`{"vehicleName":"Civic","userEmail":"renter@example.com","ownerEmail":"owner@example.com"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var body AckResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Acknowledged {
		t.Error("expected acknowledged true")
	}
	if body.InsertedID != "bbbbbbbbbbbbbbbbbbbbbbbb" {
		t.Errorf("expected assigned insertedId, got %q", body.InsertedID)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	router := newTestRouter(&mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return apperrors.InvalidInput("Missing required fields")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/bookings",
		strings.NewReader(`{"vehicleName":"Civic"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Missing required fields" {
		t.Errorf("expected error 'Missing required fields', got %v", body["error"])
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetAll_ForwardsEmailQuery(t *testing.T) {
	var receivedEmail string
	router := newTestRouter(&mockBookingService{
		getAllFunc: func(ctx context.Context, userEmail string) ([]*model.Booking, error) {
			receivedEmail = userEmail
			return []*model.Booking{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings?userEmail=renter%40example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if receivedEmail != "renter@example.com" {
		t.Errorf("expected userEmail query forwarded, got %q", receivedEmail)
	}
}

func TestGetAll_ReturnsBareArray(t *testing.T) {
	router := newTestRouter(&mockBookingService{
		getAllFunc: func(ctx context.Context, userEmail string) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", VehicleName: "Civic", UserEmail: "renter@example.com", OwnerEmail: "owner@example.com"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var bookings []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&bookings); err != nil {
		t.Fatalf("response should be a bare JSON array: %v", err)
	}
	if len(bookings) != 1 || bookings[0]["userEmail"] != "renter@example.com" {
		t.Errorf("unexpected payload: %v", bookings)
	}
}

func TestDelete_Success(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodDelete, "/bookings/bbbbbbbbbbbbbbbbbbbbbbbb", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Booking deleted successfully" {
		t.Errorf("expected delete confirmation message, got %v", body)
	}
}

func TestDelete_NotFound(t *testing.T) {
	router := newTestRouter(&mockBookingService{
		deleteFunc: func(ctx context.Context, id string) error {
			return apperrors.NotFound("Booking")
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/bookings/ffffffffffffffffffffffff", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
