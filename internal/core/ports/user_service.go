package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// UserListResult carries one page of users plus pagination figures.
type UserListResult struct {
	Users       []*domain.User
	Total       int64
	TotalPages  int
	CurrentPage int
}

// UserUpdateInput carries the admin-editable user fields.
// Nil pointers are left untouched; Password is re-hashed when set.
type UserUpdateInput struct {
	Name           *string
	Email          *string
	Mobile         *string
	Password       *string
	Role           *string
	Status         *string
	ProfilePicture *string
}

// UserService implements user administration.
type UserService interface {
	List(ctx context.Context, filter UserFilter) (*UserListResult, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in RegisterInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UserUpdateInput) (*domain.User, error)
	// Delete removes a user, refusing to remove the last remaining admin.
	Delete(ctx context.Context, id string) error
}
