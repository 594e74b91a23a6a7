package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/domain"
	"rentmate/internal/pkg/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaintenanceService handles maintenance requests
type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	logger          *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(maintenanceRepo repositories.MaintenanceRepository, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		logger:          logger,
	}
}

// CreateMaintenanceInput for raising a request
type CreateMaintenanceInput struct {
	PropertyID  string `json:"propertyId" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// List returns all requests
func (s *MaintenanceService) List(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	return s.maintenanceRepo.List(ctx)
}

// ListByProperty returns the requests for a property
func (s *MaintenanceService) ListByProperty(ctx context.Context, propertyID string) ([]domain.MaintenanceRequest, error) {
	return s.maintenanceRepo.ListByProperty(ctx, propertyID)
}

// Create raises an open request reported now
func (s *MaintenanceService) Create(ctx context.Context, input *CreateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	input.Description = strings.TrimSpace(input.Description)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	request := &domain.MaintenanceRequest{
		ID:           uuid.NewString(),
		PropertyID:   input.PropertyID,
		Description:  input.Description,
		DateReported: time.Now().UTC(),
		Status:       domain.MaintenanceOpen,
	}
	if err := s.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}

	s.logger.Info("maintenance request raised",
		zap.String("id", request.ID),
		zap.String("property_id", request.PropertyID),
	)
	return request, nil
}

// UpdateStatus moves a request to any status, including back to open
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id, status string) (*domain.MaintenanceRequest, error) {
	parsed, err := domain.ParseMaintenanceStatus(status)
	if err != nil {
		return nil, domain.NewValidationError("status must be one of: open, pending, in-progress, resolved")
	}

	return s.maintenanceRepo.Update(ctx, id, func(m *domain.MaintenanceRequest) error {
		m.Status = parsed
		return nil
	})
}

// Delete removes a request
func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	return s.maintenanceRepo.Delete(ctx, id)
}
