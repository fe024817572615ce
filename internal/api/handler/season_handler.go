package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// SeasonHandler serves season CRUD.
type SeasonHandler struct {
	service ports.SeasonService
}

func NewSeasonHandler(service ports.SeasonService) *SeasonHandler {
	return &SeasonHandler{service: service}
}

type createSeasonRequest struct {
	Name      string     `json:"name" validate:"required"`
	Logo      string     `json:"logo"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type updateSeasonRequest struct {
	Name      *string    `json:"name"`
	Logo      *string    `json:"logo"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	IsActive  *bool      `json:"isActive"`
}

// List handles GET /seasons (public).
//
// @Summary  List seasons
// @Tags     seasons
// @Produce  json
// @Success  200  {array}  domain.Season
// @Router   /seasons [get]
func (h *SeasonHandler) List(c echo.Context) error {
	seasons, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seasons)
}

// Get handles GET /seasons/:id (public).
func (h *SeasonHandler) Get(c echo.Context) error {
	season, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSeasonNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Season not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, season)
}

// Create handles POST /seasons (seasons privilege).
func (h *SeasonHandler) Create(c echo.Context) error {
	var req createSeasonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := identity(c)
	if err != nil {
		return err
	}

	season, err := h.service.Create(c.Request().Context(), ports.CreateSeasonInput{
		Name:      req.Name,
		Logo:      req.Logo,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, season)
}

// Update handles PUT /seasons/:id (seasons privilege).
func (h *SeasonHandler) Update(c echo.Context) error {
	var req updateSeasonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actor, err := identity(c)
	if err != nil {
		return err
	}

	season, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateSeasonInput{
		Name:      req.Name,
		Logo:      req.Logo,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  req.IsActive,
	}, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSeasonNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Season not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, season)
}

// Delete handles DELETE /seasons/:id (admin only).
func (h *SeasonHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrSeasonNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Season not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Season deleted successfully"})
}
