package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sesamelabs/identity-service/internal/api/middleware"
	"github.com/sesamelabs/identity-service/internal/core/domain"
)

// ctxClaims extracts the session claims injected by the Auth middleware
// and fast-fails before any service call: absent claims mean the route was
// wired without the middleware, which must read as unauthenticated rather
// than panic downstream.
func ctxClaims(c echo.Context) (*domain.SessionClaims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.Subject == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
