package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// RoleHandler handles the role-permission table endpoints. Routes are wired
// admin-only.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type replaceRolesRequest struct {
	Permissions map[string][]string `json:"permissions" validate:"required"`
}

// Table returns the full role-permission table.
//
// @Summary      Get the role-permission table
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.RolePermission
// @Failure      403  {object}  map[string]string
// @Router       /roles [get]
func (h *RoleHandler) Table(c echo.Context) error {
	table, err := h.service.Table(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, table)
}

// Replace upserts the supplied role entries. Replaying the same payload
// yields the same table.
//
// @Summary      Replace role-permission entries
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      replaceRolesRequest  true  "Role to pages mapping"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /roles [put]
func (h *RoleHandler) Replace(c echo.Context) error {
	var req replaceRolesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Replace(c.Request().Context(), req.Permissions); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "permissions updated"})
}
