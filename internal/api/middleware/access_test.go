package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

type stubAccessService struct {
	authorizeFn func(ctx context.Context, user *domain.User, resource string, requiredRoles ...string) error
}

func (s *stubAccessService) Authorize(ctx context.Context, user *domain.User, resource string, requiredRoles ...string) error {
	return s.authorizeFn(ctx, user, resource, requiredRoles...)
}

func (s *stubAccessService) AllowedPages(_ context.Context, _ *domain.User) ([]string, error) {
	panic("not used")
}

func TestRequirePermission_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(UserContextKey, &domain.User{ID: "u1", Role: domain.RoleStaff})

	gate := &stubAccessService{
		authorizeFn: func(_ context.Context, user *domain.User, resource string, _ ...string) error {
			if resource != "orders" || user.ID != "u1" {
				t.Fatalf("unexpected args: %s %s", resource, user.ID)
			}
			return nil
		},
	}

	called := false
	mw := RequirePermission(gate, "orders")
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequirePermission_Denies(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(UserContextKey, &domain.User{ID: "u1", Role: domain.RoleStaff})

	gate := &stubAccessService{
		authorizeFn: func(_ context.Context, _ *domain.User, _ string, _ ...string) error {
			return domain.ErrAccessDenied
		},
	}

	mw := RequirePermission(gate, "orders")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestRequirePermission_MissingUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	gate := &stubAccessService{
		authorizeFn: func(_ context.Context, _ *domain.User, _ string, _ ...string) error {
			t.Fatalf("gate should not be consulted without a user")
			return nil
		},
	}

	mw := RequirePermission(gate, "orders")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRoles_PassesRolesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(UserContextKey, &domain.User{ID: "u1", Role: domain.RoleManager})

	gate := &stubAccessService{
		authorizeFn: func(_ context.Context, _ *domain.User, resource string, roles ...string) error {
			if resource != "settings" {
				t.Fatalf("unexpected resource %s", resource)
			}
			if len(roles) != 1 || roles[0] != domain.RoleAdmin {
				t.Fatalf("unexpected roles %v", roles)
			}
			return domain.ErrAccessDenied
		},
	}

	mw := RequireRoles(gate, "settings", domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
