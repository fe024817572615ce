package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/api/middleware"
	"github.com/hop4deals/deals-api/internal/core/domain"
)

// identity extracts the account the Authenticate middleware stored and
// fast-fails if the middleware did not run. Handlers behind a gate call this
// for audit stamping; the presence check means a miswired route can never
// execute with a nil identity.
func identity(c echo.Context) (*domain.Account, error) {
	account, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return account, nil
}
