package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// MenuService implements menu item and category administration.
type MenuService struct {
	menu       ports.MenuRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewMenuService(menu ports.MenuRepository, categories ports.CategoryRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{menu: menu, categories: categories, logger: logger}
}

func (s *MenuService) ListItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.menu.List(ctx)
}

func (s *MenuService) CreateItem(ctx context.Context, in ports.MenuItemInput) (*domain.MenuItem, error) {
	if in.CategoryID != "" {
		if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
			return nil, err
		}
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	item := &domain.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Available:   available,
		CategoryID:  in.CategoryID,
	}
	created, err := s.menu.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("item_id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, id string, update ports.MenuItemUpdate) (*domain.MenuItem, error) {
	if update.CategoryID != nil && *update.CategoryID != "" {
		if _, err := s.categories.FindByID(ctx, *update.CategoryID); err != nil {
			return nil, err
		}
	}
	return s.menu.Update(ctx, id, update)
}

func (s *MenuService) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.menu.FindByID(ctx, id); err != nil {
		return err
	}
	return s.menu.Delete(ctx, id)
}

// ToggleAvailability flips the item's availability flag.
func (s *MenuService) ToggleAvailability(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.menu.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := !item.Available
	return s.menu.Update(ctx, id, ports.MenuItemUpdate{Available: &next})
}

func (s *MenuService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *MenuService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if _, err := s.categories.FindByName(ctx, name); err == nil {
		return nil, domain.ErrCategoryExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}
	return s.categories.Create(ctx, &domain.Category{Name: name})
}

// DeleteCategory removes the category and cascades to its menu items.
func (s *MenuService) DeleteCategory(ctx context.Context, id string) (int64, error) {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return 0, err
	}

	removed, err := s.menu.DeleteByCategory(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return removed, err
	}

	s.logger.Info().Str("category_id", id).Int64("items_removed", removed).Msg("category deleted")
	return removed, nil
}
