package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// CategoryHandler handles menu category endpoints.
type CategoryHandler struct {
	service ports.MenuService
}

func NewCategoryHandler(service ports.MenuService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type deleteCategoryResponse struct {
	Message      string `json:"message"`
	ItemsRemoved int64  `json:"items_removed"`
}

// List returns all categories.
//
// @Summary      List categories
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create adds a category.
//
// @Summary      Create a category
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category name"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Delete removes a category and every menu item inside it.
//
// @Summary      Delete a category and its items
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Category ID"
// @Success      200  {object}  deleteCategoryResponse
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	removed, err := h.service.DeleteCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteCategoryResponse{
		Message:      "category deleted",
		ItemsRemoved: removed,
	})
}
