package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

type captureRecorder struct {
	events []domain.AuthEvent
}

func (r *captureRecorder) Record(event domain.AuthEvent) {
	r.events = append(r.events, event)
}

func gateContext(e *echo.Echo, account *domain.Account) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if account != nil {
		c.Set(identityKey, account)
	}
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	c, rec := gateContext(e, &domain.Account{ID: "a", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(nil, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass, called=%v code=%d", called, rec.Code)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	e := echo.New()
	recorder := &captureRecorder{}
	c, rec := gateContext(e, &domain.Account{ID: "e1", Role: domain.RoleDataEntry})

	handler := RequireRole(recorder, domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(recorder.events) != 1 || recorder.events[0].Kind != domain.AuthEventForbidden {
		t.Fatalf("expected forbidden event, got %+v", recorder.events)
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	e := echo.New()
	c, rec := gateContext(e, nil)

	handler := RequireRole(nil, domain.RoleAdmin)(func(c echo.Context) error {
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

func TestRequirePrivilege_AdminBypassesEmptyMap(t *testing.T) {
	e := echo.New()
	c, rec := gateContext(e, &domain.Account{
		ID:         "a",
		Role:       domain.RoleAdmin,
		Privileges: domain.Privileges{},
	})

	handler := RequirePrivilege(nil, domain.ResourceBrands)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequirePrivilege_DataEntry(t *testing.T) {
	e := echo.New()

	cases := []struct {
		name       string
		privileges domain.Privileges
		resource   string
		wantCode   int
	}{
		{"explicit grant", domain.Privileges{"blogs": true}, domain.ResourceBlogs, http.StatusOK},
		{"explicit false", domain.Privileges{"blogs": false}, domain.ResourceBlogs, http.StatusForbidden},
		{"absent key", domain.Privileges{"deals": true}, domain.ResourceBlogs, http.StatusForbidden},
		{"nil map", nil, domain.ResourceBlogs, http.StatusForbidden},
		{"unknown resource never granted", domain.Privileges{"blogs": true}, "payments", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := gateContext(e, &domain.Account{
				ID:         "e1",
				Role:       domain.RoleDataEntry,
				Privileges: tc.privileges,
			})

			handler := RequirePrivilege(nil, tc.resource)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}

func TestRequirePrivilege_RecordsResource(t *testing.T) {
	e := echo.New()
	recorder := &captureRecorder{}
	c, _ := gateContext(e, &domain.Account{ID: "e1", Role: domain.RoleDataEntry})

	handler := RequirePrivilege(recorder, domain.ResourceSeasons)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if len(recorder.events) != 1 || recorder.events[0].Resource != domain.ResourceSeasons {
		t.Fatalf("expected seasons forbidden event, got %+v", recorder.events)
	}
}
