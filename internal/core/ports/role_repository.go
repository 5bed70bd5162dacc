package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// RoleRepository defines persistence for the role-permission table.
// FindByRole returns domain.ErrPermissionsNotConfigured when no entry exists.
type RoleRepository interface {
	FindAll(ctx context.Context) ([]domain.RolePermission, error)
	FindByRole(ctx context.Context, role string) (*domain.RolePermission, error)
	Upsert(ctx context.Context, perm domain.RolePermission) error
}
