package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dinehub/restaurant-system/internal/api/metrics"
	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// RequirePermission gates a route group on the authorization service's
// decision for the given resource. Must run after Auth.
func RequirePermission(gate ports.AccessService, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if err := gate.Authorize(c.Request().Context(), user, resource); err != nil {
				metrics.AccessDeniedTotal.WithLabelValues(resource, user.Role).Inc()
				return err
			}
			return next(c)
		}
	}
}

// RequireRoles gates a route group on role membership, bypassing the
// permission table. Admins always pass. Must run after Auth.
func RequireRoles(gate ports.AccessService, resource string, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if err := gate.Authorize(c.Request().Context(), user, resource, roles...); err != nil {
				metrics.AccessDeniedTotal.WithLabelValues(resource, user.Role).Inc()
				return err
			}
			return next(c)
		}
	}
}
