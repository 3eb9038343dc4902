package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sparkmeet/dating-api/internal/api/middleware"
	"github.com/sparkmeet/dating-api/internal/core/domain"
)

// ctxClient extracts the client resolved by the Auth middleware. Its absence
// means the route was registered without the middleware; treat that as an
// authentication failure rather than a panic.
func ctxClient(c echo.Context) (*domain.Client, error) {
	client, ok := c.Get(middleware.ClientContextKey).(*domain.Client)
	if !ok || client == nil {
		return nil, domain.ErrUnauthenticated
	}
	return client, nil
}
