package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.nextID++
	clone := *category
	clone.ID = "cat-" + strconv.Itoa(r.nextID)
	r.categories[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func newMenuService(menu *stubMenuRepo, cats *stubCategoryRepo) *MenuService {
	return NewMenuService(menu, cats, zerolog.Nop())
}

func TestMenuService_DeleteCategory_Cascades(t *testing.T) {
	menu := newStubMenuRepo()
	cats := newStubCategoryRepo()
	svc := newMenuService(menu, cats)

	cat, err := svc.CreateCategory(context.Background(), "Starters")
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.CreateItem(context.Background(), ports.MenuItemInput{
			Name: "Item " + strconv.Itoa(i), Price: 10, CategoryID: cat.ID,
		}); err != nil {
			t.Fatalf("create item failed: %v", err)
		}
	}
	if _, err := svc.CreateItem(context.Background(), ports.MenuItemInput{Name: "Loose", Price: 5}); err != nil {
		t.Fatalf("create loose item failed: %v", err)
	}

	removed, err := svc.DeleteCategory(context.Background(), cat.ID)
	if err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 cascaded items, got %d", removed)
	}

	items, _ := svc.ListItems(context.Background())
	if len(items) != 1 || items[0].Name != "Loose" {
		t.Fatalf("expected only the uncategorised item to survive, got %v", items)
	}
	if _, err := cats.FindByID(context.Background(), cat.ID); err != domain.ErrCategoryNotFound {
		t.Fatalf("category should be gone, got %v", err)
	}
}

func TestMenuService_CreateCategory_Duplicate(t *testing.T) {
	svc := newMenuService(newStubMenuRepo(), newStubCategoryRepo())

	if _, err := svc.CreateCategory(context.Background(), "Mains"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateCategory(context.Background(), "Mains"); err != domain.ErrCategoryExists {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestMenuService_CreateItem_UnknownCategory(t *testing.T) {
	svc := newMenuService(newStubMenuRepo(), newStubCategoryRepo())
	if _, err := svc.CreateItem(context.Background(), ports.MenuItemInput{
		Name: "Ghost", Price: 1, CategoryID: "missing",
	}); err != domain.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestMenuService_ToggleAvailability(t *testing.T) {
	menu := newStubMenuRepo()
	svc := newMenuService(menu, newStubCategoryRepo())

	item, err := svc.CreateItem(context.Background(), ports.MenuItemInput{Name: "Chai", Price: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !item.Available {
		t.Fatalf("items default to available")
	}

	toggled, err := svc.ToggleAvailability(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.Available {
		t.Fatalf("expected unavailable after toggle")
	}
}
