package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, rawToken string) (*domain.Account, error)
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.Account, error) {
	panic("not used")
}

func (s *stubAuthService) Authenticate(ctx context.Context, rawToken string) (*domain.Account, error) {
	return s.authenticateFn(ctx, rawToken)
}

func (s *stubAuthService) Profile(context.Context, string) (*domain.Account, error) {
	panic("not used")
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(_ context.Context, raw string) (*domain.Account, error) {
			if raw != "good-token" {
				t.Fatalf("unexpected token: %q", raw)
			}
			return &domain.Account{ID: "acc_1", Role: domain.RoleAdmin, IsActive: true}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(stub, zerolog.Nop())(func(c echo.Context) error {
		called = true
		account, ok := IdentityFrom(c)
		if !ok || account.ID != "acc_1" {
			t.Fatalf("identity not set: %+v", account)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(context.Context, string) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(stub, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_BadScheme(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(context.Context, string) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(stub, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_UniformRejection(t *testing.T) {
	// Expired tokens and deactivated accounts must produce an identical
	// response body so callers cannot probe account state.
	e := echo.New()

	bodies := make(map[string]struct{})
	for _, failure := range []error{domain.ErrTokenExpired, domain.ErrAccountNotFound, domain.ErrTokenSignatureInvalid} {
		stub := &stubAuthService{
			authenticateFn: func(context.Context, string) (*domain.Account, error) {
				return nil, failure
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer some-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Authenticate(stub, zerolog.Nop())(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", failure, rec.Code)
		}
		bodies[rec.Body.String()] = struct{}{}
	}

	if len(bodies) != 1 {
		t.Fatalf("rejection bodies differ across failure kinds: %v", bodies)
	}
}
