package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
//
// Handlers map most domain errors themselves; this is the backstop that
// keeps anything escaping a handler from leaking internals.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, handler HTTPErrors).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Token and identity
	// errors share one generic unauthorized message on purpose.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenSignatureInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many login attempts"
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrUnknownPrivilege):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found"
	case errors.Is(err, domain.ErrBrandNotFound):
		return http.StatusNotFound, "Brand not found"
	case errors.Is(err, domain.ErrDealNotFound):
		return http.StatusNotFound, "Deal not found"
	case errors.Is(err, domain.ErrBlogNotFound):
		return http.StatusNotFound, "Blog not found"
	case errors.Is(err, domain.ErrSeasonNotFound):
		return http.StatusNotFound, "Season not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error"
}
