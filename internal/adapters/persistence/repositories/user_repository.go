package repositories

import (
	"context"
	"strings"

	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/core/domain"
)

// userRepository implements UserRepository interface
type userRepository struct {
	users *jsonCollection[domain.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(s *store.DocumentStore) UserRepository {
	return &userRepository{users: newJSONCollection[domain.User](s, domain.CollectionUsers)}
}

// List returns all users
func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.users.List(ctx)
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users.GetByID(ctx, id)
}

// GetByEmail gets the first user whose email matches, ignoring case
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.users.First(ctx, func(u *domain.User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

// CreateUnique appends user unless its email is already taken, ignoring
// case. It returns domain.ErrDuplicateEmail without writing on a clash.
func (r *userRepository) CreateUnique(ctx context.Context, user *domain.User) error {
	added, err := r.users.AppendUnless(ctx, *user, func(u *domain.User) bool {
		return strings.EqualFold(u.Email, user.Email)
	})
	if err != nil {
		return err
	}
	if !added {
		return domain.ErrDuplicateEmail
	}
	return nil
}

// Update mutates a user in place
func (r *userRepository) Update(ctx context.Context, id string, mutate func(*domain.User) error) (*domain.User, error) {
	return r.users.Update(ctx, id, mutate)
}

// Delete removes a user
func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.users.Remove(ctx, id)
}

// ReplaceAll overwrites the users collection
func (r *userRepository) ReplaceAll(ctx context.Context, users []domain.User) error {
	return r.users.ReplaceAll(ctx, users)
}
