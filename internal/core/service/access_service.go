package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// AccessService is the authorization gate. It decides ALLOW/DENY for a loaded
// identity against a requested page, consulting the role-permission table for
// every role except admin, which passes unconditionally.
type AccessService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewAccessService(roles ports.RoleRepository, logger zerolog.Logger) *AccessService {
	return &AccessService{roles: roles, logger: logger}
}

// Authorize returns nil to allow the request. Every other outcome, including
// a failed table lookup, yields an error: the gate fails closed.
func (s *AccessService) Authorize(ctx context.Context, user *domain.User, resource string, requiredRoles ...string) error {
	if user == nil {
		return domain.ErrAccessDenied
	}

	// Hard-coded bypass, not a table entry.
	if user.Role == domain.RoleAdmin {
		return nil
	}

	// Coarse-grained endpoints supply an explicit allow-list and skip the table.
	if len(requiredRoles) > 0 {
		for _, r := range requiredRoles {
			if user.Role == r {
				return nil
			}
		}
		return domain.ErrAccessDenied
	}

	// Settings is admin-only regardless of what the table says.
	if resource == domain.PageSettings {
		return domain.ErrAccessDenied
	}

	perm, err := s.roles.FindByRole(ctx, user.Role)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionsNotConfigured) {
			return domain.ErrPermissionsNotConfigured
		}
		s.logger.Error().Err(err).Str("role", user.Role).Msg("permission lookup failed, denying")
		return fmt.Errorf("permission lookup: %w", err)
	}

	if !perm.Allows(resource) {
		return domain.ErrAccessDenied
	}
	return nil
}

// AllowedPages computes the page set the client uses to hide navigation.
// The server-side Authorize check above remains authoritative on every request.
func (s *AccessService) AllowedPages(ctx context.Context, user *domain.User) ([]string, error) {
	if user == nil {
		return nil, domain.ErrAccessDenied
	}
	if user.Role == domain.RoleAdmin {
		return []string{domain.AllPages}, nil
	}

	perm, err := s.roles.FindByRole(ctx, user.Role)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionsNotConfigured) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("permission lookup: %w", err)
	}

	pages := make([]string, 0, len(perm.Pages))
	for _, p := range perm.Pages {
		if p == domain.PageSettings {
			continue
		}
		pages = append(pages, p)
	}
	return pages, nil
}
