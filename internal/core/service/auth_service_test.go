package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ ports.UserFilter) ([]*domain.User, int64, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Mobile != nil {
		u.Mobile = *update.Mobile
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.Status != nil {
		u.Status = *update.Status
	}
	if update.ProfilePicture != nil {
		u.ProfilePicture = *update.ProfilePicture
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) CountPerRole(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, u := range r.users {
		out[u.Role]++
	}
	return out, nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_FirstAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, token, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "Alice@Example.com", Password: "pass123", Role: "cashier",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("first registration must be forced to admin, got %s", user.Role)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email should be normalised, got %s", user.Email)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.users[user.ID].PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DisabledOnceAdminExists(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Alice", Email: "a@x.com", Password: "p"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Bob", Email: "b@x.com", Password: "p"}); err != domain.ErrRegistrationDisabled {
		t.Fatalf("expected ErrRegistrationDisabled, got %v", err)
	}

	open, err := svc.RegistrationOpen(context.Background())
	if err != nil {
		t.Fatalf("registration status: %v", err)
	}
	if open {
		t.Fatalf("registration should be closed")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Carol", Email: "carol@x.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected admin role claim, got %v", claims["role"])
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %s, got %v", user.ID, claims["sub"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Name: "Dave", Email: "dave@x.com", Password: "goodpass"})
	if _, _, err := svc.Login(context.Background(), "dave@x.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())
	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Eve", Email: "eve@x.com", Password: "pass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	inactive := domain.StatusInactive
	if _, err := repo.Update(context.Background(), user.ID, ports.UserUpdate{Status: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "eve@x.com", "pass"); err != domain.ErrAccountInactive {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestAuthService_AdminRegister_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.AdminRegister(context.Background(), ports.RegisterInput{Name: "A", Email: "a@x.com", Password: "p", Role: domain.RoleStaff}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.AdminRegister(context.Background(), ports.RegisterInput{Name: "B", Email: "a@x.com", Password: "p", Role: domain.RoleCashier}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_AdminRegister_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())
	if _, err := svc.AdminRegister(context.Background(), ports.RegisterInput{Name: "X", Email: "x@x.com", Password: "p", Role: "owner"}); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "F", Email: "f@x.com", Password: "oldpass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "wrong", "newpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), user.ID, "oldpass", "newpass"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "f@x.com", "newpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
