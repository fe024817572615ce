package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// BrandHandler serves brand CRUD.
type BrandHandler struct {
	service ports.BrandService
}

func NewBrandHandler(service ports.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

type createBrandRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website" validate:"omitempty,url"`
}

type updateBrandRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Website     *string `json:"website" validate:"omitempty,url"`
	IsActive    *bool   `json:"isActive"`
}

// List handles GET /brands (public).
//
// @Summary  List brands
// @Tags     brands
// @Produce  json
// @Success  200  {array}  domain.Brand
// @Router   /brands [get]
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

// Get handles GET /brands/:id (public).
func (h *BrandHandler) Get(c echo.Context) error {
	brand, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Brand not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

// Create handles POST /brands (brands privilege).
//
// @Summary   Create a brand
// @Tags      brands
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createBrandRequest  true  "New brand"
// @Success   201   {object}  domain.Brand
// @Router    /brands [post]
func (h *BrandHandler) Create(c echo.Context) error {
	var req createBrandRequest
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

	brand, err := h.service.Create(c.Request().Context(), ports.CreateBrandInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
	}, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, brand)
}

// Update handles PUT /brands/:id (brands privilege).
func (h *BrandHandler) Update(c echo.Context) error {
	var req updateBrandRequest
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

	brand, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateBrandInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		IsActive:    req.IsActive,
	}, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Brand not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

// Delete handles DELETE /brands/:id (admin only).
func (h *BrandHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Brand not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Brand deleted successfully"})
}
