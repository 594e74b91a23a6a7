package repositories

import (
	"context"

	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/core/domain"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	applications *jsonCollection[domain.RentalApplication]
}

// NewApplicationRepository creates a new rental application repository
func NewApplicationRepository(s *store.DocumentStore) ApplicationRepository {
	return &applicationRepository{applications: newJSONCollection[domain.RentalApplication](s, domain.CollectionApplications)}
}

// List returns all applications
func (r *applicationRepository) List(ctx context.Context) ([]domain.RentalApplication, error) {
	return r.applications.List(ctx)
}

// GetByID gets an application by ID
func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.RentalApplication, error) {
	return r.applications.GetByID(ctx, id)
}

// ListByTenant returns a tenant's applications
func (r *applicationRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.RentalApplication, error) {
	return r.applications.Filter(ctx, func(a *domain.RentalApplication) bool {
		return a.TenantID == tenantID
	})
}

// ListByProperty returns the applications received for a property
func (r *applicationRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.RentalApplication, error) {
	return r.applications.Filter(ctx, func(a *domain.RentalApplication) bool {
		return a.PropertyID == propertyID
	})
}

// Create appends a new application
func (r *applicationRepository) Create(ctx context.Context, application *domain.RentalApplication) error {
	return r.applications.Append(ctx, *application)
}

// Update mutates an application in place
func (r *applicationRepository) Update(ctx context.Context, id string, mutate func(*domain.RentalApplication) error) (*domain.RentalApplication, error) {
	return r.applications.Update(ctx, id, mutate)
}

// Delete removes an application
func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	return r.applications.Remove(ctx, id)
}
