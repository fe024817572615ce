package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// UserHandler serves the admin-only account management endpoints.
type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

type createUserRequest struct {
	Email      string          `json:"email" validate:"required,email"`
	Password   string          `json:"password" validate:"required,min=8"`
	Privileges map[string]bool `json:"privileges"`
}

type updateUserRequest struct {
	Email      *string         `json:"email" validate:"omitempty,email"`
	Privileges map[string]bool `json:"privileges"`
	IsActive   *bool           `json:"isActive"`
}

// List returns all dataEntry accounts.
//
// @Summary      List dataEntry users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Get returns one account by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	account, err := h.accounts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Create adds a dataEntry account. The role is fixed server-side.
//
// @Summary      Create a dataEntry user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
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

	account, err := h.accounts.Create(c.Request().Context(), ports.CreateAccountInput{
		Email:      req.Email,
		Password:   req.Password,
		Privileges: req.Privileges,
	}, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountExists):
			return echo.NewHTTPError(http.StatusBadRequest, "User already exists")
		case errors.Is(err, domain.ErrUnknownPrivilege):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.JSON(http.StatusCreated, account)
}

// Update applies a partial update to an account.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Account id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
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

	account, err := h.accounts.Update(c.Request().Context(), c.Param("id"), ports.UpdateAccountInput{
		Email:      req.Email,
		Privileges: req.Privileges,
		IsActive:   req.IsActive,
	}, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrUnknownPrivilege):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Delete hard-deletes an account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.accounts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
