package repositories

import (
	"context"

	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/core/domain"
)

// propertyRepository implements PropertyRepository interface
type propertyRepository struct {
	properties *jsonCollection[domain.Property]
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(s *store.DocumentStore) PropertyRepository {
	return &propertyRepository{properties: newJSONCollection[domain.Property](s, domain.CollectionProperties)}
}

// List returns all properties
func (r *propertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	return r.properties.List(ctx)
}

// GetByID gets a property by ID
func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	return r.properties.GetByID(ctx, id)
}

// ListByLandlord returns the properties owned by a landlord
func (r *propertyRepository) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	return r.properties.Filter(ctx, func(p *domain.Property) bool {
		return p.LandlordID == landlordID
	})
}

// ListByTenant returns the properties a tenant is assigned to
func (r *propertyRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Property, error) {
	return r.properties.Filter(ctx, func(p *domain.Property) bool {
		return p.HasTenant(tenantID)
	})
}

// Create appends a new property
func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	return r.properties.Append(ctx, *property)
}

// Update mutates a property in place
func (r *propertyRepository) Update(ctx context.Context, id string, mutate func(*domain.Property) error) (*domain.Property, error) {
	return r.properties.Update(ctx, id, mutate)
}

// Delete removes a property
func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	return r.properties.Remove(ctx, id)
}
