package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hop4deals/deals-api/internal/api/metrics"
	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// identityKey is the echo context key the authenticated account is stored
// under. Handlers and gates retrieve it via IdentityFrom.
const identityKey = "identity"

// IdentityFrom returns the account Authenticate stored in the context.
func IdentityFrom(c echo.Context) (*domain.Account, bool) {
	account, ok := c.Get(identityKey).(*domain.Account)
	return account, ok
}

// Authenticate parses the bearer token, verifies it, and loads the live
// account it refers to. Every failure — missing header, malformed token, bad
// signature, expiry, unknown or deactivated account — answers with the same
// generic 401 so the response never reveals which check failed. The distinct
// causes are logged and counted for diagnostics.
func Authenticate(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			account, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				reason := rejectionReason(err)
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				log.Debug().
					Str("reason", reason).
					Str("path", c.Path()).
					Msg("request rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(identityKey, account)
			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch err {
	case domain.ErrTokenMalformed:
		return "malformed"
	case domain.ErrTokenSignatureInvalid:
		return "bad_signature"
	case domain.ErrTokenExpired:
		return "expired"
	case domain.ErrAccountNotFound:
		return "account_gone"
	default:
		return "error"
	}
}

// recordForbidden reports a failed gate to the auth event log.
func recordForbidden(c echo.Context, events ports.AuthEventRecorder, account *domain.Account, resource string) {
	if events == nil {
		return
	}
	var accountID string
	if account != nil {
		accountID = account.ID
	}
	events.Record(domain.AuthEvent{
		Kind:      domain.AuthEventForbidden,
		AccountID: accountID,
		Resource:  resource,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})
}
