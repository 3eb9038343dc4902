package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "authentication required"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "authentication required"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{domain.ErrTargetNotFound, http.StatusNotFound, "target client not found"},
		{domain.ErrClientNotFound, http.StatusNotFound, "client not found"},
		{domain.ErrEmailTaken, http.StatusConflict, "email already in use"},
		{domain.ErrRateLimited, http.StatusTooManyRequests, "daily like limit reached, try again later"},
		{domain.ErrInvalidFilter, http.StatusBadRequest, "requester coordinates are not set"},
	}

	for _, tc := range cases {
		code, msg := handleError(t, tc.err)
		if code != tc.wantCode {
			t.Errorf("%v: code = %d, want %d", tc.err, code, tc.wantCode)
		}
		if msg != tc.wantMsg {
			t.Errorf("%v: message = %q, want %q", tc.err, msg, tc.wantMsg)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, msg := handleError(t, fmt.Errorf("record like: %w", domain.ErrRateLimited))
	if code != http.StatusTooManyRequests {
		t.Fatalf("code = %d, want 429", code)
	}
	if msg != "daily like limit reached, try again later" {
		t.Fatalf("message = %q", msg)
	}
}

func TestErrorHandler_AuthFailuresIndistinguishable(t *testing.T) {
	_, missing := handleError(t, domain.ErrUnauthenticated)
	_, expired := handleError(t, domain.ErrTokenExpired)
	_, invalid := handleError(t, domain.ErrInvalidToken)
	if missing != expired || expired != invalid {
		t.Fatalf("authentication failures leak the rejection reason: %q %q %q", missing, expired, invalid)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "distance must be a number"))
	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	if msg != "distance must be a number" {
		t.Fatalf("message = %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	code, msg := handleError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if strings.Contains(msg, "mongo") {
		t.Fatalf("internal details leaked to client: %q", msg)
	}
}
