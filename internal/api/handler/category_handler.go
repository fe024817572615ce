package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// CategoryHandler serves category CRUD.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// List handles GET /categories (public).
//
// @Summary  List categories
// @Tags     categories
// @Produce  json
// @Success  200  {array}  domain.Category
// @Router   /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get handles GET /categories/:id (public).
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create handles POST /categories (categories privilege).
//
// @Summary   Create a category
// @Tags      categories
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      createCategoryRequest  true  "New category"
// @Success   201   {object}  domain.Category
// @Router    /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
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

	category, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update handles PUT /categories/:id (categories privilege).
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actor, err := identity(c)
	if err != nil {
		return err
	}

	category, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /categories/:id (admin only).
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
