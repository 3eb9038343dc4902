package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

type stubRepo struct {
	clients map[int64]*domain.Client
	calls   int
}

func (r *stubRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	r.calls++
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c, nil
}

func (r *stubRepo) FindByEmail(context.Context, string) (*domain.Client, error) {
	return nil, domain.ErrClientNotFound
}
func (r *stubRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	return c, nil
}
func (r *stubRepo) List(context.Context, domain.ClientFilter) ([]domain.Client, error) {
	return nil, nil
}
func (r *stubRepo) ExistsLike(context.Context, int64, int64) (bool, error) { return false, nil }
func (r *stubRepo) RecordLike(context.Context, int64, int64) error        { return nil }
func (r *stubRepo) CountLikesSince(context.Context, int64, time.Time) (int64, error) {
	return 0, nil
}

type stubVerifier struct {
	clientID int64
	err      error
}

func (v *stubVerifier) VerifyAccessToken(string) (int64, error) {
	return v.clientID, v.err
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	repo := &stubRepo{clients: map[int64]*domain.Client{
		42: {ID: 42, FirstName: "Anna", Email: "anna@example.com"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(&stubVerifier{clientID: 42}, repo)
	handler := mw(func(c echo.Context) error {
		called = true
		client, ok := c.Get(ClientContextKey).(*domain.Client)
		if !ok || client.ID != 42 {
			t.Fatalf("client not stored in context: %v", c.Get(ClientContextKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	repo := &stubRepo{clients: map[int64]*domain.Client{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{clientID: 42}, repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	// The repository must never be consulted without a credential.
	if repo.calls != 0 {
		t.Fatalf("expected no repository lookups, got %d", repo.calls)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	e := echo.New()
	repo := &stubRepo{clients: map[int64]*domain.Client{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{clientID: 42}, repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	repo := &stubRepo{clients: map[int64]*domain.Client{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{err: domain.ErrInvalidToken}, repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownSubject(t *testing.T) {
	e := echo.New()
	repo := &stubRepo{clients: map[int64]*domain.Client{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{clientID: 404}, repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	// Unknown subject yields the same 401 as a bad token, not a 404.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
