package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// UserService implements user administration.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// List returns one page of users with pagination figures.
func (s *UserService) List(ctx context.Context, filter ports.UserFilter) (*ports.UserListResult, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	// "all" disables the filter, matching the original query contract.
	if filter.Role == "all" {
		filter.Role = ""
	}
	if filter.Status == "all" {
		filter.Status = ""
	}

	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.UserListResult{
		Users:       users,
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		CurrentPage: filter.Page,
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Create adds a user account with an explicit role and status.
func (s *UserService) Create(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	email := strings.ToLower(in.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        email,
		Mobile:       in.Mobile,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       status,
		JoinedAt:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update applies a partial update; a supplied password is re-hashed.
func (s *UserService) Update(ctx context.Context, id string, in ports.UserUpdateInput) (*domain.User, error) {
	if in.Role != nil && !domain.ValidRole(*in.Role) {
		return nil, domain.ErrInvalidRole
	}

	update := ports.UserUpdate{
		Name:           in.Name,
		Email:          in.Email,
		Mobile:         in.Mobile,
		Role:           in.Role,
		Status:         in.Status,
		ProfilePicture: in.ProfilePicture,
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	return s.users.Update(ctx, id, update)
}

// Delete removes a user, refusing to remove the last remaining admin.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == domain.RoleAdmin {
		n, err := s.users.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		if n <= 1 {
			return domain.ErrLastAdmin
		}
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
