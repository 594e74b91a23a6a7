package config

import (
	"context"

	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/core/domain"

	"go.uber.org/zap"
)

// DemoUsers are the accounts written on first run, one per role
var DemoUsers = []domain.User{
	{ID: "admin-1", Name: "Demo Admin", Email: "admin@demo.com", Role: domain.RoleAdmin},
	{ID: "landlord-1", Name: "Demo Landlord", Email: "landlord@demo.com", Role: domain.RoleLandlord},
	{ID: "tenant-1", Name: "Demo Tenant", Email: "tenant@demo.com", Role: domain.RoleTenant},
}

// DemoProperties are the listings written on first run
var DemoProperties = []domain.Property{
	{
		ID:         "property-1",
		Title:      "Blue Roof House",
		Address:    "12 Blue St, Nairobi",
		Rent:       12000,
		LandlordID: "landlord-1",
		Tenants:    []string{},
		Status:     domain.PropertyVacant,
	},
	{
		ID:         "property-2",
		Title:      "Studio 5 Apartments",
		Address:    "4 Market Ave, Nairobi",
		Rent:       8000,
		LandlordID: "landlord-2",
		Tenants:    []string{},
		Status:     domain.PropertyOccupied,
	},
}

// Seeder handles first-run seeding of the document store
type Seeder struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(s *store.DocumentStore, logger *zap.Logger) *Seeder {
	return &Seeder{store: s, logger: logger}
}

// Run writes the demo dataset into every collection that does not exist yet.
// Existing collections are never touched, so Run is safe on every start.
func (s *Seeder) Run(ctx context.Context) error {
	return s.seed(ctx, false)
}

// Reset overwrites every collection with the demo dataset
func (s *Seeder) Reset(ctx context.Context) error {
	return s.seed(ctx, true)
}

func (s *Seeder) seed(ctx context.Context, overwrite bool) error {
	seeds := map[domain.Collection]any{
		domain.CollectionProperties:   DemoProperties,
		domain.CollectionPayments:     []domain.Payment{},
		domain.CollectionMaintenance:  []domain.MaintenanceRequest{},
		domain.CollectionUsers:        DemoUsers,
		domain.CollectionApplications: []domain.RentalApplication{},
	}

	for _, c := range domain.Collections {
		if !overwrite && s.store.Exists(ctx, c) {
			continue
		}
		if err := s.store.Save(ctx, c, seeds[c]); err != nil {
			return err
		}
		s.logger.Info("seeded collection", zap.String("collection", string(c)))
	}
	return nil
}
