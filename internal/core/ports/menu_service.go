package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// MenuItemInput carries the fields for creating a menu item.
type MenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Available   *bool
	CategoryID  string
}

// MenuService implements menu and category administration.
type MenuService interface {
	ListItems(ctx context.Context) ([]*domain.MenuItem, error)
	CreateItem(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id string, update MenuItemUpdate) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
	ToggleAvailability(ctx context.Context, id string) (*domain.MenuItem, error)

	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	// DeleteCategory removes the category and cascades to its menu items,
	// returning the number of items removed.
	DeleteCategory(ctx context.Context, id string) (int64, error)
}
