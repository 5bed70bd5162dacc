package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// DashboardHandler serves the read-only analytics endpoints.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary returns the headline dashboard figures.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Failure      403  {object}  map[string]string
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// SalesTrends returns per-day sales for the last week.
//
// @Summary      Sales trends
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.DayBucket
// @Router       /dashboard/sales-trends [get]
func (h *DashboardHandler) SalesTrends(c echo.Context) error {
	buckets, err := h.service.SalesTrends(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buckets)
}

// TopSelling returns the best selling menu items.
//
// @Summary      Top selling items
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ItemSales
// @Router       /dashboard/top-selling [get]
func (h *DashboardHandler) TopSelling(c echo.Context) error {
	sales, err := h.service.TopSelling(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// UserRoles returns the user count per role.
//
// @Summary      User role distribution
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.RoleCount
// @Router       /dashboard/user-roles [get]
func (h *DashboardHandler) UserRoles(c echo.Context) error {
	counts, err := h.service.UserRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// RecentActivities returns the latest order activity feed.
//
// @Summary      Recent activities
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.Activity
// @Router       /dashboard/recent-activities [get]
func (h *DashboardHandler) RecentActivities(c echo.Context) error {
	activities, err := h.service.RecentActivities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}
