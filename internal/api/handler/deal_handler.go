package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// DealHandler serves deal CRUD.
type DealHandler struct {
	service ports.DealService
}

func NewDealHandler(service ports.DealService) *DealHandler {
	return &DealHandler{service: service}
}

type createDealRequest struct {
	Brand       string     `json:"brand" validate:"required"`
	Season      string     `json:"season"`
	Code        string     `json:"code"`
	Link        string     `json:"link" validate:"required,url"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	PercentOff  float64    `json:"percentOff" validate:"omitempty,gte=0,lte=100"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsHot       bool       `json:"isHot"`
}

type updateDealRequest struct {
	Brand       *string    `json:"brand"`
	Season      *string    `json:"season"`
	Code        *string    `json:"code"`
	Link        *string    `json:"link" validate:"omitempty,url"`
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	PercentOff  *float64   `json:"percentOff" validate:"omitempty,gte=0,lte=100"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    *bool      `json:"isActive"`
	IsHot       *bool      `json:"isHot"`
}

// List handles GET /deals (public).
//
// @Summary  List deals
// @Tags     deals
// @Produce  json
// @Success  200  {array}  domain.Deal
// @Router   /deals [get]
func (h *DealHandler) List(c echo.Context) error {
	deals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deals)
}

// Get handles GET /deals/:id (public).
func (h *DealHandler) Get(c echo.Context) error {
	deal, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Deal not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, deal)
}

// Create handles POST /deals (deals privilege). The referenced brand must
// exist.
//
// @Summary   Create a deal
// @Tags      deals
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createDealRequest  true  "New deal"
// @Success   201   {object}  domain.Deal
// @Failure   404   {object}  map[string]string
// @Router    /deals [post]
func (h *DealHandler) Create(c echo.Context) error {
	var req createDealRequest
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

	deal, err := h.service.Create(c.Request().Context(), ports.CreateDealInput{
		BrandID:     req.Brand,
		SeasonID:    req.Season,
		Code:        req.Code,
		Link:        req.Link,
		Type:        req.Type,
		Description: req.Description,
		PercentOff:  req.PercentOff,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsHot:       req.IsHot,
	}, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Brand not found")
		}
		return err
	}
	return c.JSON(http.StatusCreated, deal)
}

// Update handles PUT /deals/:id (deals privilege).
func (h *DealHandler) Update(c echo.Context) error {
	var req updateDealRequest
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

	deal, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateDealInput{
		BrandID:     req.Brand,
		SeasonID:    req.Season,
		Code:        req.Code,
		Link:        req.Link,
		Type:        req.Type,
		Description: req.Description,
		PercentOff:  req.PercentOff,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
		IsHot:       req.IsHot,
	}, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDealNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Deal not found")
		case errors.Is(err, domain.ErrBrandNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Brand not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, deal)
}

// Delete handles DELETE /deals/:id (admin only).
func (h *DealHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Deal not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deal deleted successfully"})
}
