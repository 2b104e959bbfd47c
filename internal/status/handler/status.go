package handler

import (
	"context"
	"net/http"
	"time"

	listingservice "travelease/internal/listings/service"
	httputil "travelease/pkg/http"
	"travelease/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
)

const livenessMessage = "TravelEase server is running!"

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

type TestResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

type StatusHandler struct {
	mongoClient *mongo.Client
	listings    listingservice.ListingService
	log         *logger.Logger
}

func NewStatusHandler(mongoClient *mongo.Client, listings listingservice.ListingService, log *logger.Logger) *StatusHandler {
	return &StatusHandler{
		mongoClient: mongoClient,
		listings:    listings,
		log:         log,
	}
}

func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteText(w, http.StatusOK, livenessMessage); err != nil {
		h.log.Error("failed to write text response", "handler", "Root", "operation", "WriteText", "error", err)
	}
}

// Test reports store connectivity by counting the products collection.
func (h *StatusHandler) Test(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := h.listings.Count(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Test", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, TestResponse{
		Message: "DB Connected!",
		Count:   count,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Test", "operation", "WriteSuccess", "error", err)
	}
}

func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *StatusHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		h.log.Error("Database health check failed",
			"error", err,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Database: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Database: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *StatusHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.GET("/test", h.Test)
}

func (h *StatusHandler) RegisterHealthRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
