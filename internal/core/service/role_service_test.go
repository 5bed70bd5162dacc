package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

func TestRoleService_Replace_Idempotent(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	payload := map[string][]string{
		domain.RoleStaff:   {"orders", "menu"},
		domain.RoleCashier: {"orders"},
	}
	if err := svc.Replace(context.Background(), payload); err != nil {
		t.Fatalf("first replace failed: %v", err)
	}
	first, _ := svc.Table(context.Background())

	if err := svc.Replace(context.Background(), payload); err != nil {
		t.Fatalf("second replace failed: %v", err)
	}
	second, _ := svc.Table(context.Background())

	toMap := func(perms []domain.RolePermission) map[string][]string {
		m := make(map[string][]string)
		for _, p := range perms {
			m[p.Role] = p.Pages
		}
		return m
	}
	if !reflect.DeepEqual(toMap(first), toMap(second)) {
		t.Fatalf("replace is not idempotent: %v vs %v", first, second)
	}
	if got := toMap(second)[domain.RoleStaff]; !reflect.DeepEqual(got, []string{"orders", "menu"}) {
		t.Fatalf("unexpected staff pages: %v", got)
	}
}

func TestRoleService_Replace_OverwritesNotAppends(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	_ = svc.Replace(context.Background(), map[string][]string{domain.RoleStaff: {"orders", "menu", "dashboard"}})
	_ = svc.Replace(context.Background(), map[string][]string{domain.RoleStaff: {"orders"}})

	perm, err := repo.FindByRole(context.Background(), domain.RoleStaff)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(perm.Pages) != 1 || perm.Pages[0] != "orders" {
		t.Fatalf("expected pages replaced, got %v", perm.Pages)
	}
}

func TestRoleService_Replace_RejectsAdminAndUnknownRoles(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), zerolog.Nop())

	if err := svc.Replace(context.Background(), map[string][]string{domain.RoleAdmin: {"orders"}}); err != domain.ErrInvalidRole {
		t.Fatalf("admin must never enter the table, got %v", err)
	}
	if err := svc.Replace(context.Background(), map[string][]string{"intern": {"orders"}}); err != domain.ErrInvalidRole {
		t.Fatalf("unknown role must be rejected, got %v", err)
	}
}

func TestRoleService_Replace_StripsSettings(t *testing.T) {
	repo := newStubRoleRepo()
	svc := NewRoleService(repo, zerolog.Nop())

	if err := svc.Replace(context.Background(), map[string][]string{
		domain.RoleManager: {"orders", domain.PageSettings, "reports"},
	}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	perm, _ := repo.FindByRole(context.Background(), domain.RoleManager)
	for _, p := range perm.Pages {
		if p == domain.PageSettings {
			t.Fatalf("settings page must never be persisted: %v", perm.Pages)
		}
	}
	if len(perm.Pages) != 2 {
		t.Fatalf("expected remaining pages kept, got %v", perm.Pages)
	}
}
