package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// BlogHandler serves blog CRUD.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

type createBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image"`
}

type updateBlogRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Image    *string `json:"image"`
	IsActive *bool   `json:"isActive"`
}

// List handles GET /blogs (public).
//
// @Summary  List blog posts
// @Tags     blogs
// @Produce  json
// @Success  200  {array}  domain.Blog
// @Router   /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// Get handles GET /blogs/:id (public).
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Create handles POST /blogs (blogs privilege).
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogRequest
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

	blog, err := h.service.Create(c.Request().Context(), ports.CreateBlogInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	}, actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, blog)
}

// Update handles PUT /blogs/:id (blogs privilege).
func (h *BlogHandler) Update(c echo.Context) error {
	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	actor, err := identity(c)
	if err != nil {
		return err
	}

	blog, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateBlogInput{
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		IsActive: req.IsActive,
	}, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, blog)
}

// Delete handles DELETE /blogs/:id (admin only).
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrBlogNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
}
