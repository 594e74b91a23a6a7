package repositories

import (
	"context"

	"rentmate/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail matches case-insensitively and returns the first hit
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// CreateUnique fails with domain.ErrDuplicateEmail when the email is taken
	CreateUnique(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, id string, mutate func(*domain.User) error) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, users []domain.User) error
}

// PropertyRepository defines property repository interface
type PropertyRepository interface {
	List(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Property, error)
	Create(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, id string, mutate func(*domain.Property) error) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
}

// PaymentRepository defines payment repository interface
type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id string) error
}

// MaintenanceRepository defines maintenance request repository interface
type MaintenanceRepository interface {
	List(ctx context.Context) ([]domain.MaintenanceRequest, error)
	ListByProperty(ctx context.Context, propertyID string) ([]domain.MaintenanceRequest, error)
	Create(ctx context.Context, request *domain.MaintenanceRequest) error
	Update(ctx context.Context, id string, mutate func(*domain.MaintenanceRequest) error) (*domain.MaintenanceRequest, error)
	Delete(ctx context.Context, id string) error
}

// ApplicationRepository defines rental application repository interface
type ApplicationRepository interface {
	List(ctx context.Context) ([]domain.RentalApplication, error)
	GetByID(ctx context.Context, id string) (*domain.RentalApplication, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.RentalApplication, error)
	ListByProperty(ctx context.Context, propertyID string) ([]domain.RentalApplication, error)
	Create(ctx context.Context, application *domain.RentalApplication) error
	Update(ctx context.Context, id string, mutate func(*domain.RentalApplication) error) (*domain.RentalApplication, error)
	Delete(ctx context.Context, id string) error
}
