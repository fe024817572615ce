package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *domain.Account, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Account, error) {
	panic("not used")
}

func (s *stubAuthService) Profile(_ context.Context, accountID string) (*domain.Account, error) {
	return &domain.Account{ID: accountID, Email: "admin@x.com", Role: domain.RoleAdmin, IsActive: true}, nil
}

type stubThrottle struct {
	blocked  bool
	failures int
	cleared  int
}

func (s *stubThrottle) Blocked(context.Context, string, string) (bool, error) {
	return s.blocked, nil
}

func (s *stubThrottle) RecordFailure(context.Context, string, string) error {
	s.failures++
	return nil
}

func (s *stubThrottle) Clear(context.Context, string, string) error {
	s.cleared++
	return nil
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.Account, error) {
			if email != "admin@x.com" || password != "Admin@123" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.Account{
				ID:         "acc_1",
				Email:      email,
				Role:       domain.RoleAdmin,
				Privileges: domain.Privileges{},
				IsActive:   true,
			}, nil
		},
	}
	throttle := &stubThrottle{}
	h := NewAuthHandler(stub, throttle, nil, zerolog.Nop())

	c, rec := newLoginContext(e, `{"email":"admin@x.com","password":"Admin@123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "admin@x.com" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("credential hash leaked in response")
	}
	if throttle.cleared != 1 {
		t.Fatalf("expected throttle cleared once, got %d", throttle.cleared)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Account, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	throttle := &stubThrottle{}
	h := NewAuthHandler(stub, throttle, nil, zerolog.Nop())

	// Wrong password and unknown email go through the same stub error; the
	// response must be identical either way.
	var bodies []string
	for _, payload := range []string{
		`{"email":"admin@x.com","password":"wrong"}`,
		`{"email":"ghost@x.com","password":"Admin@123"}`,
	} {
		c, rec := newLoginContext(e, payload)
		if err := h.Login(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("login failure bodies differ: %q vs %q", bodies[0], bodies[1])
	}
	if throttle.failures != 2 {
		t.Fatalf("expected 2 recorded failures, got %d", throttle.failures)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Account, error) {
			t.Fatalf("login must not be attempted while throttled")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubThrottle{blocked: true}, nil, zerolog.Nop())

	c, rec := newLoginContext(e, `{"email":"admin@x.com","password":"Admin@123"}`)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Account, error) {
			t.Fatalf("login must not be attempted on invalid payload")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, nil, nil, zerolog.Nop())

	c, rec := newLoginContext(e, `{"email":"not-an-email"}`)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, nil, nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", &domain.Account{ID: "acc_1", Role: domain.RoleAdmin, IsActive: true})

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("credential hash leaked in profile")
	}
}

func TestAuthHandler_Profile_NoIdentity(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, nil, nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Profile(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
