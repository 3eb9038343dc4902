package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sparkmeet/dating-api/internal/core/ports"
)

// ClientContextKey is the echo context key the resolved client is stored under.
const ClientContextKey = "client"

// TokenVerifier is the part of the token service the resolver needs.
type TokenVerifier interface {
	VerifyAccessToken(token string) (int64, error)
}

// unauthorized is the single 401 returned for every authentication failure.
// Missing header, bad signature, expired token, and unknown subject are
// deliberately indistinguishable to the caller.
func unauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}

// Auth resolves the acting client from the Authorization header. The bearer
// header is the only supported credential transport. On success the loaded
// client is stored in the request context; nothing downstream re-verifies
// the token.
func Auth(verifier TokenVerifier, repo ports.ClientRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized()
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized()
			}

			clientID, err := verifier.VerifyAccessToken(parts[1])
			if err != nil {
				return unauthorized()
			}

			client, err := repo.FindByID(c.Request().Context(), clientID)
			if err != nil {
				return unauthorized()
			}

			c.Set(ClientContextKey, client)
			return next(c)
		}
	}
}
