package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sesamelabs/identity-service/internal/api/metrics"
	"github.com/sesamelabs/identity-service/internal/core/domain"
)

// claimsKey is the echo context key under which verified session claims
// are stored. Downstream handlers must only trust this value.
const claimsKey = "auth.claims"

// TokenVerifier abstracts the token authority for the middleware.
type TokenVerifier interface {
	Verify(tokenString string) (*domain.SessionClaims, error)
}

// Auth extracts the Bearer credential, verifies it, and injects the
// resulting claims into the request context. Requests without a valid
// token never reach the handler.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(claimsKey, claims)

			return next(c)
		}
	}
}

// ClaimsFrom returns the verified session claims attached by Auth, or nil
// when the middleware did not run.
func ClaimsFrom(c echo.Context) *domain.SessionClaims {
	claims, _ := c.Get(claimsKey).(*domain.SessionClaims)
	return claims
}

// SetClaims attaches claims to the context directly. Test helper.
func SetClaims(c echo.Context, claims *domain.SessionClaims) {
	c.Set(claimsKey, claims)
}
