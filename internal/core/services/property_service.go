package services

import (
	"context"
	"fmt"
	"strings"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/domain"
	"rentmate/internal/pkg/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PropertyService handles property listings and tenant assignment
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	logger       *zap.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(propertyRepo repositories.PropertyRepository, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// CreatePropertyInput for creating a property
type CreatePropertyInput struct {
	Title      string  `json:"title" validate:"required"`
	Address    string  `json:"address" validate:"required"`
	Rent       float64 `json:"rent" validate:"gte=0"`
	LandlordID string  `json:"landlordId" validate:"required"`
}

// List returns all properties
func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	return s.propertyRepo.List(ctx)
}

// ListByLandlord returns a landlord's properties
func (s *PropertyService) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	return s.propertyRepo.ListByLandlord(ctx, landlordID)
}

// ListByTenant returns the properties a tenant lives in
func (s *PropertyService) ListByTenant(ctx context.Context, tenantID string) ([]domain.Property, error) {
	return s.propertyRepo.ListByTenant(ctx, tenantID)
}

// Get returns one property
func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

// Create lists a new vacant property with no tenants
func (s *PropertyService) Create(ctx context.Context, input *CreatePropertyInput) (*domain.Property, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Address = strings.TrimSpace(input.Address)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	property := &domain.Property{
		ID:         uuid.NewString(),
		Title:      input.Title,
		Address:    input.Address,
		Rent:       input.Rent,
		LandlordID: input.LandlordID,
		Tenants:    []string{},
		Status:     domain.PropertyVacant,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.logger.Info("property created",
		zap.String("id", property.ID),
		zap.String("title", property.Title),
	)
	return property, nil
}

// Delete removes a property. Payments and requests that reference it are kept.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	return s.propertyRepo.Delete(ctx, id)
}

// UpdatePropertyInput for changing a property. Nil fields are left as is.
type UpdatePropertyInput struct {
	Status *string  `json:"status"`
	Rent   *float64 `json:"rent"`
}

// Update checks every supplied field, then applies them in one save.
// The status is not derived from the tenant list.
func (s *PropertyService) Update(ctx context.Context, id string, input *UpdatePropertyInput) (*domain.Property, error) {
	if input.Status == nil && input.Rent == nil {
		return nil, domain.NewValidationError("status or rent is required")
	}

	var (
		fields []string
		status domain.PropertyStatus
	)
	if input.Status != nil {
		parsed, err := domain.ParsePropertyStatus(*input.Status)
		if err != nil {
			fields = append(fields, "status must be one of: vacant, occupied")
		}
		status = parsed
	}
	if input.Rent != nil && *input.Rent < 0 {
		fields = append(fields, "rent must be at least 0")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	return s.propertyRepo.Update(ctx, id, func(p *domain.Property) error {
		if input.Status != nil {
			p.Status = status
		}
		if input.Rent != nil {
			p.Rent = *input.Rent
		}
		return nil
	})
}

// UpdateStatus sets the occupancy flag
func (s *PropertyService) UpdateStatus(ctx context.Context, id, status string) (*domain.Property, error) {
	return s.Update(ctx, id, &UpdatePropertyInput{Status: &status})
}

// UpdateRent changes the monthly rent
func (s *PropertyService) UpdateRent(ctx context.Context, id string, rent float64) (*domain.Property, error) {
	return s.Update(ctx, id, &UpdatePropertyInput{Rent: &rent})
}

// AssignTenant adds tenantID to the property and marks it occupied
func (s *PropertyService) AssignTenant(ctx context.Context, id, tenantID string) (*domain.Property, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, domain.NewValidationError("tenantId is required")
	}

	return s.propertyRepo.Update(ctx, id, func(p *domain.Property) error {
		if !p.HasTenant(tenantID) {
			p.Tenants = append(p.Tenants, tenantID)
		}
		p.Status = domain.PropertyOccupied
		return nil
	})
}

// RemoveTenant drops tenantID from the property. The status is left as is.
func (s *PropertyService) RemoveTenant(ctx context.Context, id, tenantID string) (*domain.Property, error) {
	return s.propertyRepo.Update(ctx, id, func(p *domain.Property) error {
		kept := make([]string, 0, len(p.Tenants))
		for _, t := range p.Tenants {
			if t != tenantID {
				kept = append(kept, t)
			}
		}
		p.Tenants = kept
		return nil
	})
}
