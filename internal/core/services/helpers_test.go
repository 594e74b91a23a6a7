package services

import (
	"context"
	"errors"
	"testing"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/config"
	"rentmate/internal/core/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnv is a fresh data directory with one repository per collection
type testEnv struct {
	store        *store.DocumentStore
	users        repositories.UserRepository
	properties   repositories.PropertyRepository
	payments     repositories.PaymentRepository
	maintenance  repositories.MaintenanceRepository
	applications repositories.ApplicationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := config.OpenSessionDB(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { config.CloseDatabase(db) })

	st, err := store.NewDocumentStore(t.TempDir(), store.NewSessionSlot(db), zap.NewNop())
	require.NoError(t, err)

	return &testEnv{
		store:        st,
		users:        repositories.NewUserRepository(st),
		properties:   repositories.NewPropertyRepository(st),
		payments:     repositories.NewPaymentRepository(st),
		maintenance:  repositories.NewMaintenanceRepository(st),
		applications: repositories.NewApplicationRepository(st),
	}
}

func (e *testEnv) auth(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(context.Background(), e.users, e.store, zap.NewNop())
}

// brokenSessions fails every write and never holds a session
type brokenSessions struct{}

var errSessionDown = errors.New("session store unavailable")

func (brokenSessions) SaveSession(context.Context, *domain.User) error { return errSessionDown }
func (brokenSessions) LoadSession(context.Context) (*domain.User, bool) {
	return nil, false
}
func (brokenSessions) ClearSession(context.Context) error { return errSessionDown }
