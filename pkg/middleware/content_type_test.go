package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travelease/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestContentTypeValidation(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		contentType  string
		expectStatus int
	}{
		{"post with json", http.MethodPost, "application/json", http.StatusOK},
		{"post with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"post with form", http.MethodPost, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"post without content type", http.MethodPost, "", http.StatusUnsupportedMediaType},
		{"put with json", http.MethodPut, "application/json", http.StatusOK},
		{"get without content type", http.MethodGet, "", http.StatusOK},
		{"delete without content type", http.MethodDelete, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := ContentTypeValidation(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/products", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectStatus {
				t.Errorf("expected status %d, got %d", tt.expectStatus, w.Code)
			}
		})
	}
}
