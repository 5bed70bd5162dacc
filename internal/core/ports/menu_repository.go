package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// MenuItemUpdate carries the mutable menu item fields.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Available   *bool
	CategoryID  *string
}

// MenuRepository defines persistence for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.MenuItem, error)
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Update(ctx context.Context, id string, update MenuItemUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	DeleteByCategory(ctx context.Context, categoryID string) (int64, error)
}

// CategoryRepository defines persistence for menu categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
