package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/domain"
	"rentmate/internal/pkg/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles sign-up, sign-in and the current session.
//
// Authentication is an email lookup only: passwords are required as input
// but are never stored or compared.
type AuthService struct {
	userRepo repositories.UserRepository
	sessions SessionStore
	logger   *zap.Logger

	mu          sync.RWMutex
	currentUser *domain.User
}

// NewAuthService creates a new auth service and adopts a stored session,
// so a user signed in before a restart stays signed in
func NewAuthService(
	ctx context.Context,
	userRepo repositories.UserRepository,
	sessions SessionStore,
	logger *zap.Logger,
) *AuthService {
	s := &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}

	if user, ok := sessions.LoadSession(ctx); ok {
		s.currentUser = user
		logger.Info("restored session", zap.String("email", user.Email))
	}
	return s
}

// SignUpInput represents registration input
type SignUpInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// SignInInput represents login input
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUp creates a user, saves it and signs it in
func (s *AuthService) SignUp(ctx context.Context, input *SignUpInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, domain.NewValidationError("role must be one of: admin, landlord, tenant")
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  input.Name,
		Email: input.Email,
		Role:  role,
	}
	if err := s.userRepo.CreateUnique(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// the account exists now; a failed session write only costs auto-login
	if err := s.sessions.SaveSession(ctx, user); err != nil {
		s.logger.Warn("failed to persist session after sign up", zap.Error(err))
	}
	s.setCurrent(user)

	s.logger.Info("user signed up",
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

// SignIn signs in the first user whose email matches, ignoring case
func (s *AuthService) SignIn(ctx context.Context, input *SignInInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Info("sign in failed", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}

	// TODO: verify input.Password once users carry a credential
	if err := s.sessions.SaveSession(ctx, user); err != nil {
		return nil, err
	}
	s.setCurrent(user)

	s.logger.Info("user signed in", zap.String("email", user.Email))
	return user, nil
}

// SignOut clears the session
func (s *AuthService) SignOut(ctx context.Context) error {
	s.setCurrent(nil)
	if err := s.sessions.ClearSession(ctx); err != nil {
		return err
	}
	s.logger.Info("user signed out")
	return nil
}

// CurrentUser returns the signed-in user, or nil
func (s *AuthService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// UpdateRole changes the role of the signed-in user. Only the session copy
// changes; the users collection keeps the role chosen at sign up.
func (s *AuthService) UpdateRole(ctx context.Context, role string) (*domain.User, error) {
	user := s.CurrentUser()
	if user == nil {
		return nil, domain.ErrNoSession
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, domain.NewValidationError("role must be one of: admin, landlord, tenant")
	}

	user.Role = parsed
	if err := s.sessions.SaveSession(ctx, user); err != nil {
		return nil, err
	}
	s.setCurrent(user)
	return user, nil
}

// ClearAllUsers empties the users collection. The session is left alone.
func (s *AuthService) ClearAllUsers(ctx context.Context) error {
	if err := s.userRepo.ReplaceAll(ctx, []domain.User{}); err != nil {
		return err
	}
	s.logger.Warn("all users cleared")
	return nil
}

func (s *AuthService) setCurrent(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		s.currentUser = nil
		return
	}
	u := *user
	s.currentUser = &u
}
