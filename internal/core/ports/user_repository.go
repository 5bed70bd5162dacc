package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// UserFilter narrows List queries. Zero values mean "no filter".
type UserFilter struct {
	Search string // matches name or email, case-insensitive
	Role   string
	Status string
	Page   int
	Limit  int
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role string) (int64, error)
	CountPerRole(ctx context.Context) (map[string]int64, error)
}

// UserUpdate carries the mutable user fields. Nil pointers are left untouched.
type UserUpdate struct {
	Name           *string
	Email          *string
	Mobile         *string
	PasswordHash   *string
	Role           *string
	Status         *string
	ProfilePicture *string
}
