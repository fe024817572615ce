package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/api/metrics"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// RequireRole passes requests whose authenticated account holds one of the
// allowed roles. Must run after Authenticate; a request with no identity is
// rejected, never waved through. The decision is re-evaluated on every
// request — nothing is cached across requests.
func RequireRole(events ports.AuthEventRecorder, allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			if !account.HasRole(allowedRoles...) {
				metrics.AuthRejectionsTotal.WithLabelValues("role").Inc()
				recordForbidden(c, events, account, "")
				return echo.NewHTTPError(http.StatusForbidden, "Access denied")
			}
			return next(c)
		}
	}
}

// RequirePrivilege passes admins unconditionally and dataEntry accounts that
// hold an explicit grant for the resource. Unknown resources are never
// implicitly granted. Must run after Authenticate.
func RequirePrivilege(events ports.AuthEventRecorder, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			if !account.Can(resource) {
				metrics.AuthRejectionsTotal.WithLabelValues("privilege").Inc()
				recordForbidden(c, events, account, resource)
				return echo.NewHTTPError(http.StatusForbidden, "Access denied")
			}
			return next(c)
		}
	}
}
