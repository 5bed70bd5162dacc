package ports

import (
	"context"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

// AccessService is the authorization gate. Authentication must already have
// happened: user is a loaded, active account.
type AccessService interface {
	// Authorize decides whether user may access resource. When requiredRoles
	// is non-empty the permission table is bypassed and membership in the
	// list decides. Admins pass unconditionally. A nil error means ALLOW;
	// every failure path returns a non-nil error (fail closed).
	Authorize(ctx context.Context, user *domain.User, resource string, requiredRoles ...string) error
	// AllowedPages returns the page set for the user's role:
	// ["*"] for admin, the table entry otherwise, empty when unconfigured.
	AllowedPages(ctx context.Context, user *domain.User) ([]string, error)
}
