package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("DATA_DIR", "/tmp/rentmate-data")
	t.Setenv("SESSION_DB", "")
	t.Setenv("REMINDER_ENABLED", "")
	t.Setenv("REMINDER_SCHEDULE", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "/tmp/rentmate-data", cfg.Storage.DataDir)
	assert.Equal(t, filepath.Join("/tmp/rentmate-data", "session.db"), cfg.Storage.SessionDB)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, "30 8 1 * *", cfg.Reminder.Schedule)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestOpenSessionDB_InMemory(t *testing.T) {
	db, err := OpenSessionDB(":memory:", nil)
	require.NoError(t, err)
	defer CloseDatabase(db)

	assert.NoError(t, HealthCheck(db))
	assert.True(t, db.Migrator().HasTable("settings"))
}

func TestHealthCheck_NilDB(t *testing.T) {
	assert.Error(t, HealthCheck(nil))
	assert.NoError(t, CloseDatabase(nil))
}

func newSeedStore(t *testing.T) *store.DocumentStore {
	t.Helper()
	s, err := store.NewDocumentStore(t.TempDir(), nil, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestSeeder_FirstRun(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore(t)

	require.NoError(t, NewSeeder(s, zap.NewNop()).Run(ctx))

	for _, c := range domain.Collections {
		assert.True(t, s.Exists(ctx, c), "collection %s", c)
	}

	var properties []domain.Property
	require.True(t, s.Load(ctx, domain.CollectionProperties, &properties))
	require.Len(t, properties, 2)
	assert.Equal(t, "Blue Roof House", properties[0].Title)
	assert.Equal(t, float64(12000), properties[0].Rent)
	assert.Equal(t, domain.PropertyVacant, properties[0].Status)
	assert.Equal(t, "Studio 5 Apartments", properties[1].Title)
	assert.Equal(t, domain.PropertyOccupied, properties[1].Status)
	assert.Equal(t, "landlord-2", properties[1].LandlordID)

	var users []domain.User
	require.True(t, s.Load(ctx, domain.CollectionUsers, &users))
	require.Len(t, users, 3)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
	assert.Equal(t, domain.RoleLandlord, users[1].Role)
	assert.Equal(t, domain.RoleTenant, users[2].Role)

	raw, err := os.ReadFile(s.Path(domain.CollectionPayments))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestSeeder_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore(t)
	seeder := NewSeeder(s, zap.NewNop())

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, s.Save(ctx, domain.CollectionUsers, []domain.User{}))

	before := map[domain.Collection][]byte{}
	for _, c := range domain.Collections {
		data, err := os.ReadFile(s.Path(c))
		require.NoError(t, err)
		before[c] = data
	}

	require.NoError(t, seeder.Run(ctx))

	for _, c := range domain.Collections {
		data, err := os.ReadFile(s.Path(c))
		require.NoError(t, err)
		assert.Equal(t, before[c], data, "collection %s", c)
	}
}

func TestSeeder_ReplacesOnlyMissing(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore(t)

	require.NoError(t, s.Save(ctx, domain.CollectionProperties, []domain.Property{}))
	require.NoError(t, NewSeeder(s, zap.NewNop()).Run(ctx))

	var properties []domain.Property
	require.True(t, s.Load(ctx, domain.CollectionProperties, &properties))
	assert.Empty(t, properties)

	var users []domain.User
	require.True(t, s.Load(ctx, domain.CollectionUsers, &users))
	assert.Len(t, users, 3)
}

func TestSeeder_Reset(t *testing.T) {
	ctx := context.Background()
	s := newSeedStore(t)
	seeder := NewSeeder(s, zap.NewNop())

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, s.Save(ctx, domain.CollectionUsers, []domain.User{}))
	require.NoError(t, seeder.Reset(ctx))

	var users []domain.User
	require.True(t, s.Load(ctx, domain.CollectionUsers, &users))
	assert.Len(t, users, 3)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(&Config{AppMode: "prod", LogLevel: "nonsense"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.InfoLevel))
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
}
