package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// RoleService manages the role-permission table.
type RoleService interface {
	Table(ctx context.Context) ([]domain.RolePermission, error)
	// Replace upserts one entry per supplied role. Replaying the same input
	// yields the same table (replace, not append). Unknown roles and the
	// admin role are rejected; the settings page is stripped.
	Replace(ctx context.Context, permissions map[string][]string) error
}
