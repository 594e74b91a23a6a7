package repositories

import (
	"context"

	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/core/domain"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	payments *jsonCollection[domain.Payment]
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(s *store.DocumentStore) PaymentRepository {
	return &paymentRepository{payments: newJSONCollection[domain.Payment](s, domain.CollectionPayments)}
}

// List returns all payments
func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	return r.payments.List(ctx)
}

// ListByTenant returns the payments made by a tenant
func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	return r.payments.Filter(ctx, func(p *domain.Payment) bool {
		return p.TenantID == tenantID
	})
}

// ListByProperty returns the payments made for a property
func (r *paymentRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Payment, error) {
	return r.payments.Filter(ctx, func(p *domain.Payment) bool {
		return p.PropertyID == propertyID
	})
}

// Create appends a new payment
func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return r.payments.Append(ctx, *payment)
}

// Delete removes a payment
func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	return r.payments.Remove(ctx, id)
}
