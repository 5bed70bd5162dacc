package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

type stubRoleRepo struct {
	entries map[string][]string
	findErr error
	upserts []domain.RolePermission
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{entries: make(map[string][]string)}
}

func (r *stubRoleRepo) FindAll(_ context.Context) ([]domain.RolePermission, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]domain.RolePermission, 0, len(r.entries))
	for role, pages := range r.entries {
		out = append(out, domain.RolePermission{Role: role, Pages: pages})
	}
	return out, nil
}

func (r *stubRoleRepo) FindByRole(_ context.Context, role string) (*domain.RolePermission, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	pages, ok := r.entries[role]
	if !ok {
		return nil, domain.ErrPermissionsNotConfigured
	}
	return &domain.RolePermission{Role: role, Pages: pages}, nil
}

func (r *stubRoleRepo) Upsert(_ context.Context, perm domain.RolePermission) error {
	r.upserts = append(r.upserts, perm)
	r.entries[perm.Role] = perm.Pages
	return nil
}

func activeUser(role string) *domain.User {
	return &domain.User{ID: "u1", Role: role, Status: domain.StatusActive}
}

func TestAccessService_AdminAllowsEverything(t *testing.T) {
	repo := newStubRoleRepo() // table is empty on purpose
	svc := NewAccessService(repo, zerolog.Nop())

	for _, resource := range []string{"orders", "menu", "users", "dashboard", "settings", "no-such-page", ""} {
		if err := svc.Authorize(context.Background(), activeUser(domain.RoleAdmin), resource); err != nil {
			t.Fatalf("admin denied for %q: %v", resource, err)
		}
	}
}

func TestAccessService_UnconfiguredRoleDenies(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewAccessService(repo, zerolog.Nop())

	err := svc.Authorize(context.Background(), activeUser(domain.RoleStaff), "orders")
	if err != domain.ErrPermissionsNotConfigured {
		t.Fatalf("expected ErrPermissionsNotConfigured, got %v", err)
	}
}

func TestAccessService_TableMembership(t *testing.T) {
	repo := newStubRoleRepo()
	repo.entries[domain.RoleStaff] = []string{"orders", "menu"}
	svc := NewAccessService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), activeUser(domain.RoleStaff), "orders"); err != nil {
		t.Fatalf("staff should access orders: %v", err)
	}
	if err := svc.Authorize(context.Background(), activeUser(domain.RoleStaff), "users"); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied for users, got %v", err)
	}
}

func TestAccessService_RequiredRolesBypassTable(t *testing.T) {
	repo := newStubRoleRepo() // no entries: the table must not be consulted
	svc := NewAccessService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), activeUser(domain.RoleManager), "", domain.RoleManager, domain.RoleCashier); err != nil {
		t.Fatalf("manager should pass the allow-list: %v", err)
	}
	if err := svc.Authorize(context.Background(), activeUser(domain.RoleStaff), "", domain.RoleManager); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestAccessService_UnknownRoleFailsClosed(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewAccessService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), activeUser("intern"), "orders"); err != domain.ErrPermissionsNotConfigured {
		t.Fatalf("expected deny for unknown role, got %v", err)
	}
}

func TestAccessService_SettingsAdminOnlyEvenWhenListed(t *testing.T) {
	repo := newStubRoleRepo()
	repo.entries[domain.RoleManager] = []string{"orders", domain.PageSettings}
	svc := NewAccessService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), activeUser(domain.RoleManager), domain.PageSettings); err != domain.ErrAccessDenied {
		t.Fatalf("settings must stay admin-only, got %v", err)
	}
}

func TestAccessService_WrappedUnconfiguredErrorStillRecognised(t *testing.T) {
	repo := newStubRoleRepo()
	repo.findErr = fmt.Errorf("role cache: %w", domain.ErrPermissionsNotConfigured)
	svc := NewAccessService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), activeUser(domain.RoleStaff), "orders"); err != domain.ErrPermissionsNotConfigured {
		t.Fatalf("expected ErrPermissionsNotConfigured, got %v", err)
	}
	pages, err := svc.AllowedPages(context.Background(), activeUser(domain.RoleStaff))
	if err != nil || len(pages) != 0 {
		t.Fatalf("expected empty page set, got %v / %v", pages, err)
	}
}

func TestAccessService_LookupFailureDenies(t *testing.T) {
	repo := newStubRoleRepo()
	repo.findErr = errors.New("store unreachable")
	svc := NewAccessService(repo, zerolog.Nop())

	if err := svc.Authorize(context.Background(), activeUser(domain.RoleCashier), "orders"); err == nil {
		t.Fatalf("expected error when the permission store is unreachable")
	}
}

func TestAccessService_NilUserDenies(t *testing.T) {
	svc := NewAccessService(newStubRoleRepo(), zerolog.Nop())
	if err := svc.Authorize(context.Background(), nil, "orders"); err != domain.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied for nil user, got %v", err)
	}
}

func TestAccessService_AllowedPages(t *testing.T) {
	repo := newStubRoleRepo()
	repo.entries[domain.RoleStaff] = []string{"orders", "menu", domain.PageSettings}
	svc := NewAccessService(repo, zerolog.Nop())

	pages, err := svc.AllowedPages(context.Background(), activeUser(domain.RoleAdmin))
	if err != nil {
		t.Fatalf("admin pages: %v", err)
	}
	if len(pages) != 1 || pages[0] != domain.AllPages {
		t.Fatalf("expected [*] for admin, got %v", pages)
	}

	pages, err = svc.AllowedPages(context.Background(), activeUser(domain.RoleStaff))
	if err != nil {
		t.Fatalf("staff pages: %v", err)
	}
	if len(pages) != 2 || pages[0] != "orders" || pages[1] != "menu" {
		t.Fatalf("settings must be filtered out, got %v", pages)
	}

	pages, err = svc.AllowedPages(context.Background(), activeUser(domain.RoleCashier))
	if err != nil {
		t.Fatalf("cashier pages: %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("unconfigured role should get no pages, got %v", pages)
	}
}
