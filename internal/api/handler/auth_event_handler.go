package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/core/ports"
)

const defaultEventLimit = 100

// AuthEventHandler exposes the recorded auth events to administrators.
type AuthEventHandler struct {
	events ports.AuthEventRepository
}

func NewAuthEventHandler(events ports.AuthEventRepository) *AuthEventHandler {
	return &AuthEventHandler{events: events}
}

// List handles GET /auth/events (admin only). Returns the most recent
// security events, newest first.
//
// @Summary   List recent auth events
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Param     limit  query     int  false  "Maximum events to return (default 100)"
// @Success   200    {array}   domain.AuthEvent
// @Failure   403    {object}  map[string]string
// @Router    /auth/events [get]
func (h *AuthEventHandler) List(c echo.Context) error {
	limit := int64(defaultEventLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	events, err := h.events.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
