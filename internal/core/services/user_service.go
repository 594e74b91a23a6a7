package services

import (
	"context"
	"strings"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/domain"
	"rentmate/internal/pkg/validate"
)

// UserService handles user management
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns every user, optionally filtered by role
func (s *UserService) ListUsers(ctx context.Context, role string) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil || role == "" {
		return users, err
	}

	want, err := domain.ParseRole(role)
	if err != nil {
		return nil, domain.NewValidationError("role must be one of: admin, landlord, tenant")
	}

	filtered := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == want {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUserInput represents the editable user fields; nil means unchanged
type UpdateUserInput struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// UpdateUser changes a user's name and/or role
func (s *UserService) UpdateUser(ctx context.Context, id string, input *UpdateUserInput) (*domain.User, error) {
	var role domain.Role
	if input.Role != nil {
		parsed, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, domain.NewValidationError("role must be one of: admin, landlord, tenant")
		}
		role = parsed
	}
	if input.Name != nil {
		if err := validate.Struct(struct {
			Name string `json:"name" validate:"required"`
		}{Name: strings.TrimSpace(*input.Name)}); err != nil {
			return nil, err
		}
	}

	return s.userRepo.Update(ctx, id, func(u *domain.User) error {
		if input.Name != nil {
			u.Name = strings.TrimSpace(*input.Name)
		}
		if input.Role != nil {
			u.Role = role
		}
		return nil
	})
}

// DeleteUser removes a user. Deleting an unknown id is not an error.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
