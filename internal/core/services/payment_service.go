package services

import (
	"context"
	"fmt"
	"time"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/domain"
	"rentmate/internal/pkg/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService handles rent payment records
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	logger      *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repositories.PaymentRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// CreatePaymentInput for recording a payment
type CreatePaymentInput struct {
	PropertyID string  `json:"propertyId" validate:"required"`
	TenantID   string  `json:"tenantId" validate:"required"`
	Amount     float64 `json:"amount" validate:"gt=0"`
}

// List returns all payments
func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}

// ListByTenant returns the payments made by a tenant
func (s *PaymentService) ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListByTenant(ctx, tenantID)
}

// ListByProperty returns the payments made for a property
func (s *PaymentService) ListByProperty(ctx context.Context, propertyID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListByProperty(ctx, propertyID)
}

// Create records a payment dated now
func (s *PaymentService) Create(ctx context.Context, input *CreatePaymentInput) (*domain.Payment, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:         uuid.NewString(),
		PropertyID: input.PropertyID,
		Amount:     input.Amount,
		Date:       time.Now().UTC(),
		TenantID:   input.TenantID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("payment recorded",
		zap.String("id", payment.ID),
		zap.String("property_id", payment.PropertyID),
		zap.Float64("amount", payment.Amount),
	)
	return payment, nil
}

// Delete removes a payment record
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.paymentRepo.Delete(ctx, id)
}

// Total sums payment amounts
func Total(payments []domain.Payment) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}
