package services

import (
	"context"

	"rentmate/internal/core/domain"
)

// Note: AuthService implementation is in auth_service.go
// Note: each collection manager lives in its own *_service.go

// SessionStore is the single-record "signed-in user" slot.
// *store.DocumentStore implements it.
type SessionStore interface {
	SaveSession(ctx context.Context, user *domain.User) error
	LoadSession(ctx context.Context) (*domain.User, bool)
	ClearSession(ctx context.Context) error
}
