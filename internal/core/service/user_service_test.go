package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

func seedUser(repo *stubUserRepo, name, email, role string) *domain.User {
	u, _ := repo.Create(context.Background(), &domain.User{
		Name: name, Email: email, Role: role, Status: domain.StatusActive, PasswordHash: "x",
	})
	return u
}

func TestUserService_Delete_LastAdminGuard(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	admin := seedUser(repo, "Root", "root@x.com", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin.ID); err != domain.ErrLastAdmin {
		t.Fatalf("expected ErrLastAdmin, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), admin.ID); err != nil {
		t.Fatalf("last admin must survive: %v", err)
	}

	second := seedUser(repo, "Root2", "root2@x.com", domain.RoleAdmin)
	if err := svc.Delete(context.Background(), second.ID); err != nil {
		t.Fatalf("deleting one of two admins should succeed: %v", err)
	}
}

func TestUserService_Delete_NonAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	seedUser(repo, "Root", "root@x.com", domain.RoleAdmin)
	staff := seedUser(repo, "S", "s@x.com", domain.RoleStaff)

	if err := svc.Delete(context.Background(), staff.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), staff.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.RegisterInput{
		Name: "A", Email: "dup@x.com", Password: "p", Role: domain.RoleStaff,
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.RegisterInput{
		Name: "B", Email: "DUP@x.com", Password: "p", Role: domain.RoleCashier,
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	u := seedUser(repo, "A", "a@x.com", domain.RoleStaff)

	bad := "superuser"
	if _, err := svc.Update(context.Background(), u.ID, ports.UserUpdateInput{Role: &bad}); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_List_Defaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(repo, "A", "a@x.com", domain.RoleStaff)
	seedUser(repo, "B", "b@x.com", domain.RoleCashier)

	res, err := svc.List(context.Background(), ports.UserFilter{Role: "all", Status: "all"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.CurrentPage != 1 || res.Total != 2 || res.TotalPages != 1 {
		t.Fatalf("unexpected pagination: %+v", res)
	}
}
