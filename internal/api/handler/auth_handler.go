package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hop4deals/deals-api/internal/api/metrics"
	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// AuthHandler serves login and profile.
type AuthHandler struct {
	auth     ports.AuthService
	throttle ports.LoginThrottle
	events   ports.AuthEventRecorder
	log      zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, throttle ports.LoginThrottle, events ports.AuthEventRecorder, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, throttle: throttle, events: events, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// accountView is the redacted login payload: id, email, role, privileges and
// nothing else.
type accountView struct {
	ID         string            `json:"id"`
	Email      string            `json:"email"`
	Role       string            `json:"role"`
	Privileges domain.Privileges `json:"privileges"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  accountView `json:"user"`
}

// Login authenticates by email and password and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	addr := c.RealIP()

	if h.blocked(c, req.Email, addr) {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		h.record(domain.AuthEventLoginThrottled, req.Email, "", addr)
		return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts")
	}

	signed, account, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			h.recordFailure(c, req.Email, addr)
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.clearThrottle(c, req.Email, addr)
	h.record(domain.AuthEventLoginSuccess, req.Email, account.ID, addr)

	return c.JSON(http.StatusOK, loginResponse{
		Token: signed,
		User: accountView{
			ID:         account.ID,
			Email:      account.Email,
			Role:       account.Role,
			Privileges: account.Privileges,
		},
	})
}

// Profile returns the current account without its credential hash.
//
// @Summary      Current account profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	account, err := identity(c)
	if err != nil {
		return err
	}

	profile, err := h.auth.Profile(c.Request().Context(), account.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		}
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// blocked asks the throttle whether this attempt is over budget. Throttle
// outages fail open: a redis blip must not lock everyone out.
func (h *AuthHandler) blocked(c echo.Context, email, addr string) bool {
	if h.throttle == nil {
		return false
	}
	blocked, err := h.throttle.Blocked(c.Request().Context(), email, addr)
	if err != nil {
		h.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		return false
	}
	return blocked
}

func (h *AuthHandler) recordFailure(c echo.Context, email, addr string) {
	if h.throttle != nil {
		if err := h.throttle.RecordFailure(c.Request().Context(), email, addr); err != nil {
			h.log.Warn().Err(err).Msg("login throttle record failed")
		}
	}
	h.record(domain.AuthEventLoginFailure, email, "", addr)
}

func (h *AuthHandler) clearThrottle(c echo.Context, email, addr string) {
	if h.throttle == nil {
		return
	}
	if err := h.throttle.Clear(c.Request().Context(), email, addr); err != nil {
		h.log.Warn().Err(err).Msg("login throttle clear failed")
	}
}

func (h *AuthHandler) record(kind, email, accountID, addr string) {
	if h.events == nil {
		return
	}
	h.events.Record(domain.AuthEvent{
		Kind:      kind,
		Email:     email,
		AccountID: accountID,
		RemoteIP:  addr,
		Timestamp: time.Now().UTC(),
	})
}
