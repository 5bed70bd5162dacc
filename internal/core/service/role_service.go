package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// RoleService manages the role-permission table. The table only ever holds
// non-admin roles; admin access is hard-coded in the gate.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

// Table returns every configured role entry.
func (s *RoleService) Table(ctx context.Context) ([]domain.RolePermission, error) {
	return s.roles.FindAll(ctx)
}

// Replace upserts one entry per supplied role. Replaying the same payload
// leaves the table unchanged (replace semantics, not append). Unknown roles
// and the admin role are rejected; the settings page can never be persisted.
func (s *RoleService) Replace(ctx context.Context, permissions map[string][]string) error {
	for role := range permissions {
		if role == domain.RoleAdmin || !domain.ValidRole(role) {
			return domain.ErrInvalidRole
		}
	}

	for role, pages := range permissions {
		filtered := make([]string, 0, len(pages))
		for _, p := range pages {
			if p == domain.PageSettings {
				s.logger.Warn().Str("role", role).Msg("settings page stripped from permission update")
				continue
			}
			filtered = append(filtered, p)
		}
		if err := s.roles.Upsert(ctx, domain.RolePermission{Role: role, Pages: filtered}); err != nil {
			return err
		}
	}

	s.logger.Info().Int("roles", len(permissions)).Msg("role permissions updated")
	return nil
}
