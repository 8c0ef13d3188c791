package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandlerMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
		{"validation", domain.ErrValidation("name is required"), http.StatusBadRequest, "name is required"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"bad token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"audio missing", domain.ErrAudioNotFound, http.StatusNotFound, "audio not found"},
		{"request missing", domain.ErrRequestNotFound, http.StatusNotFound, "personalized request not found"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "user with this email already exists"},
		{"bad role", domain.ErrInvalidRole, http.StatusBadRequest, "invalid role specified"},
		{"bad transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid status transition"},
		{"unknown", errors.New("database exploded"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handleError(t, tt.err)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode %q: %v", rec.Body.String(), err)
			}
			if body["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", body["error"], tt.wantMsg)
			}
		})
	}
}

func TestErrorHandlerHidesInternalDetails(t *testing.T) {
	rec := handleError(t, errors.New("pq: connection refused on 10.0.0.5"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if body := rec.Body.String(); body == "" || body != `{"error":"internal server error"}`+"\n" {
		t.Errorf("body = %q, internal details must not leak", body)
	}
}
