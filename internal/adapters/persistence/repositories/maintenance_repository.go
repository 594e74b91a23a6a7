package repositories

import (
	"context"

	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/core/domain"
)

// maintenanceRepository implements MaintenanceRepository interface
type maintenanceRepository struct {
	requests *jsonCollection[domain.MaintenanceRequest]
}

// NewMaintenanceRepository creates a new maintenance request repository
func NewMaintenanceRepository(s *store.DocumentStore) MaintenanceRepository {
	return &maintenanceRepository{requests: newJSONCollection[domain.MaintenanceRequest](s, domain.CollectionMaintenance)}
}

// List returns all maintenance requests
func (r *maintenanceRepository) List(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	return r.requests.List(ctx)
}

// ListByProperty returns the requests raised for a property
func (r *maintenanceRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.MaintenanceRequest, error) {
	return r.requests.Filter(ctx, func(m *domain.MaintenanceRequest) bool {
		return m.PropertyID == propertyID
	})
}

// Create appends a new request
func (r *maintenanceRepository) Create(ctx context.Context, request *domain.MaintenanceRequest) error {
	return r.requests.Append(ctx, *request)
}

// Update mutates a request in place
func (r *maintenanceRepository) Update(ctx context.Context, id string, mutate func(*domain.MaintenanceRequest) error) (*domain.MaintenanceRequest, error) {
	return r.requests.Update(ctx, id, mutate)
}

// Delete removes a request
func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	return r.requests.Remove(ctx, id)
}
