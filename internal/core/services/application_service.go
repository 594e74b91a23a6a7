package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/domain"
	"rentmate/internal/pkg/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApplicationService handles rental applications and their decisions
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	logger          *zap.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(applicationRepo repositories.ApplicationRepository, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// SubmitApplicationInput for applying to a property
type SubmitApplicationInput struct {
	PropertyID       string  `json:"propertyId" validate:"required"`
	MonthlyIncome    float64 `json:"monthlyIncome" validate:"gt=0"`
	EmploymentStatus string  `json:"employmentStatus" validate:"required"`
	Notes            string  `json:"notes"`
}

// List returns all applications
func (s *ApplicationService) List(ctx context.Context) ([]domain.RentalApplication, error) {
	return s.applicationRepo.List(ctx)
}

// ListByTenant returns a tenant's applications
func (s *ApplicationService) ListByTenant(ctx context.Context, tenantID string) ([]domain.RentalApplication, error) {
	return s.applicationRepo.ListByTenant(ctx, tenantID)
}

// ListByProperty returns the applications for a property
func (s *ApplicationService) ListByProperty(ctx context.Context, propertyID string) ([]domain.RentalApplication, error) {
	return s.applicationRepo.ListByProperty(ctx, propertyID)
}

// Get returns one application
func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.RentalApplication, error) {
	return s.applicationRepo.GetByID(ctx, id)
}

// Submit files a pending application on behalf of applicant, copying
// their name and email onto the record
func (s *ApplicationService) Submit(ctx context.Context, applicant *domain.User, input *SubmitApplicationInput) (*domain.RentalApplication, error) {
	if applicant == nil {
		return nil, domain.ErrNoSession
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	employment, err := domain.ParseEmploymentStatus(input.EmploymentStatus)
	if err != nil {
		return nil, domain.NewValidationError(
			"employmentStatus must be one of: employed, self-employed, student, unemployed")
	}

	var notes *string
	if n := strings.TrimSpace(input.Notes); n != "" {
		notes = &n
	}

	application := &domain.RentalApplication{
		ID:               uuid.NewString(),
		PropertyID:       input.PropertyID,
		TenantID:         applicant.ID,
		ApplicationDate:  time.Now().UTC(),
		Status:           domain.ApplicationPending,
		TenantName:       applicant.Name,
		TenantEmail:      applicant.Email,
		MonthlyIncome:    input.MonthlyIncome,
		EmploymentStatus: employment,
		Notes:            notes,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.logger.Info("application submitted",
		zap.String("id", application.ID),
		zap.String("property_id", application.PropertyID),
		zap.String("tenant_id", application.TenantID),
	)
	return application, nil
}

// Approve decides a pending application in the tenant's favour
func (s *ApplicationService) Approve(ctx context.Context, id string) (*domain.RentalApplication, error) {
	return s.transition(ctx, id, domain.ApplicationApproved)
}

// Reject declines a pending application
func (s *ApplicationService) Reject(ctx context.Context, id string) (*domain.RentalApplication, error) {
	return s.transition(ctx, id, domain.ApplicationRejected)
}

func (s *ApplicationService) transition(ctx context.Context, id string, next domain.ApplicationStatus) (*domain.RentalApplication, error) {
	application, err := s.applicationRepo.Update(ctx, id, func(a *domain.RentalApplication) error {
		if !a.Status.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, a.Status, next)
		}
		a.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("application decided",
		zap.String("id", application.ID),
		zap.String("status", string(application.Status)),
	)
	return application, nil
}

// Delete withdraws an application on behalf of requester. Tenants may only
// withdraw their own; an unknown id is not an error.
func (s *ApplicationService) Delete(ctx context.Context, requester *domain.User, id string) error {
	if requester != nil && requester.Role == domain.RoleTenant {
		application, err := s.applicationRepo.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if application.TenantID != requester.ID {
			return domain.ErrForbidden
		}
	}
	return s.applicationRepo.Delete(ctx, id)
}
