package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dinehub/restaurant-system/internal/api/middleware"
	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// ctxUser extracts the account injected by the Auth middleware. Its presence
// proves the middleware ran; a miss means the route is wired without auth.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
