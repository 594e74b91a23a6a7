package services

import (
	"context"
	"testing"

	"rentmate/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewUserService(env.users)

	require.NoError(t, env.users.CreateUnique(ctx, &domain.User{ID: "u1", Name: "Ann", Email: "ann@x.com", Role: domain.RoleTenant}))
	require.NoError(t, env.users.CreateUnique(ctx, &domain.User{ID: "u2", Name: "Ben", Email: "ben@x.com", Role: domain.RoleLandlord}))

	all, err := svc.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tenants, err := svc.ListUsers(ctx, "Tenant")
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "u1", tenants[0].ID)

	_, err = svc.ListUsers(ctx, "wizard")
	assert.ErrorIs(t, err, domain.ErrValidation)

	name, role := "Annie", "admin"
	updated, err := svc.UpdateUser(ctx, "u1", &UpdateUserInput{Name: &name, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "Annie", updated.Name)
	assert.Equal(t, domain.RoleAdmin, updated.Role)

	blank := " "
	_, err = svc.UpdateUser(ctx, "u1", &UpdateUserInput{Name: &blank})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateUser(ctx, "missing", &UpdateUserInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.DeleteUser(ctx, "u2"))
	_, err = svc.GetUserByID(ctx, "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
