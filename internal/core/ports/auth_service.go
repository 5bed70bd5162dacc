package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// RegisterInput carries the fields accepted by both registration paths.
// Role is ignored for public registration (forced to admin).
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Mobile   string
	Role     string
	Status   string
}

// ProfileUpdateInput carries the self-service profile fields.
type ProfileUpdateInput struct {
	Name           string
	Mobile         string
	ProfilePicture string
}

// AuthService implements registration, login and session maintenance.
type AuthService interface {
	// Register creates the first admin account. Once any admin exists it
	// returns domain.ErrRegistrationDisabled.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	// AdminRegister creates an account with an explicit role.
	AdminRegister(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	RegistrationOpen(ctx context.Context) (bool, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileUpdateInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	IssueToken(user *domain.User) (string, error)
}
