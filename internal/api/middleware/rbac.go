package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sesamelabs/identity-service/internal/api/metrics"
	"github.com/sesamelabs/identity-service/internal/core/domain"
)

// RoleGate abstracts the access policy's role check.
type RoleGate interface {
	RequireRole(caller *domain.SessionClaims, allowed ...string) bool
}

// RBAC enforces role-based access control. It composes after Auth: a
// request with no claims is unauthenticated (401), one whose role is not
// in the allowed set is forbidden (403).
func RBAC(gate RoleGate, allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !gate.RequireRole(claims, allowedRoles...) {
				metrics.AuthRejectionsTotal.WithLabelValues("insufficient_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden: insufficient role")
			}
			return next(c)
		}
	}
}
