package services

import (
	"context"
	"fmt"
	"time"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/domain"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ============================================================
// Rent reminders
// ============================================================

// RentDue is a tenant with no payment for a property in a given month
type RentDue struct {
	PropertyID    string  `json:"property_id"`
	PropertyTitle string  `json:"property_title"`
	TenantID      string  `json:"tenant_id"`
	Rent          float64 `json:"rent"`
	Month         string  `json:"month"`
}

// RentReminderService reports unpaid rent on a cron schedule
type RentReminderService struct {
	propertyRepo repositories.PropertyRepository
	paymentRepo  repositories.PaymentRepository
	logger       *zap.Logger
	cron         *cron.Cron
}

// NewRentReminderService creates a new reminder service
func NewRentReminderService(
	propertyRepo repositories.PropertyRepository,
	paymentRepo repositories.PaymentRepository,
	logger *zap.Logger,
) *RentReminderService {
	return &RentReminderService{
		propertyRepo: propertyRepo,
		paymentRepo:  paymentRepo,
		logger:       logger,
		cron:         cron.New(),
	}
}

// Outstanding lists, for every occupied property, the tenants with no
// payment for that property in now's calendar month
func (s *RentReminderService) Outstanding(ctx context.Context, now time.Time) ([]RentDue, error) {
	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	year, month, _ := now.Date()
	paid := make(map[string]bool)
	for _, p := range payments {
		py, pm, _ := p.Date.In(now.Location()).Date()
		if py == year && pm == month {
			paid[p.PropertyID+"/"+p.TenantID] = true
		}
	}

	label := fmt.Sprintf("%04d-%02d", year, int(month))
	due := []RentDue{}
	for _, prop := range properties {
		if prop.Status != domain.PropertyOccupied {
			continue
		}
		for _, tenantID := range prop.Tenants {
			if paid[prop.ID+"/"+tenantID] {
				continue
			}
			due = append(due, RentDue{
				PropertyID:    prop.ID,
				PropertyTitle: prop.Title,
				TenantID:      tenantID,
				Rent:          prop.Rent,
				Month:         label,
			})
		}
	}
	return due, nil
}

// Start schedules the reminder check
func (s *RentReminderService) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.Info("rent reminders scheduled", zap.String("schedule", schedule))
	return nil
}

// Stop stops the scheduler and waits for a running check to finish
func (s *RentReminderService) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("rent reminders stopped")
}

func (s *RentReminderService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	due, err := s.Outstanding(ctx, time.Now())
	if err != nil {
		s.logger.Error("rent reminder check failed", zap.Error(err))
		return
	}

	for _, d := range due {
		s.logger.Info("rent due",
			zap.String("property_id", d.PropertyID),
			zap.String("property", d.PropertyTitle),
			zap.String("tenant_id", d.TenantID),
			zap.Float64("rent", d.Rent),
			zap.String("month", d.Month),
		)
	}
	s.logger.Info("rent reminder check completed", zap.Int("due", len(due)))
}
