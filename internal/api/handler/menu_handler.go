package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// MenuHandler handles menu item endpoints.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

type createMenuItemRequest struct {
	Name        string  `json:"name"  validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image,omitempty"`
	Available   *bool   `json:"available,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
}

type updateMenuItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Available   *bool    `json:"available,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
}

// List returns all menu items.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.MenuItem
// @Failure      403  {object}  map[string]string
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a menu item.
//
// @Summary      Create a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMenuItemRequest  true  "Item details"
// @Success      201   {object}  domain.MenuItem
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), ports.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Available:   req.Available,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update applies a partial update to a menu item.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Menu item ID"
// @Param        body  body      updateMenuItemRequest  true  "Fields to update"
// @Success      200   {object}  domain.MenuItem
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /menu/{id} [patch]
func (h *MenuHandler) Update(c echo.Context) error {
	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.UpdateItem(c.Request().Context(), c.Param("id"), ports.MenuItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Available:   req.Available,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a menu item.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Menu item ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "menu item deleted"})
}

// ToggleAvailability flips a menu item's availability.
//
// @Summary      Toggle menu item availability
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Menu item ID"
// @Success      200  {object}  domain.MenuItem
// @Failure      404  {object}  map[string]string
// @Router       /menu/{id}/availability [patch]
func (h *MenuHandler) ToggleAvailability(c echo.Context) error {
	item, err := h.service.ToggleAvailability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}
