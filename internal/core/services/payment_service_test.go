package services

import (
	"context"
	"testing"
	"time"

	"rentmate/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPaymentService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewPaymentService(newTestEnv(t).payments, zap.NewNop())

	before := time.Now().UTC().Add(-time.Second)
	p, err := svc.Create(ctx, &CreatePaymentInput{PropertyID: "p1", TenantID: "t1", Amount: 12000})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Date.After(before))

	_, err = svc.Create(ctx, &CreatePaymentInput{PropertyID: "p2", TenantID: "t1", Amount: 8000})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreatePaymentInput{PropertyID: "p2", TenantID: "t2", Amount: 8000})
	require.NoError(t, err)

	byTenant, err := svc.ListByTenant(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, byTenant, 2)
	assert.Equal(t, float64(20000), Total(byTenant))

	byProperty, err := svc.ListByProperty(ctx, "p2")
	require.NoError(t, err)
	assert.Len(t, byProperty, 2)

	require.NoError(t, svc.Delete(ctx, p.ID))
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPaymentService_Validation(t *testing.T) {
	svc := NewPaymentService(newTestEnv(t).payments, zap.NewNop())

	_, err := svc.Create(context.Background(), &CreatePaymentInput{PropertyID: "p1", TenantID: "t1", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), &CreatePaymentInput{Amount: 10})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, float64(0), Total(nil))
	assert.Equal(t, 150.5, Total([]domain.Payment{{Amount: 100}, {Amount: 50.5}}))
}
