package services

import (
	"context"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/core/domain"
)

// DashboardService aggregates the collections for the role dashboards
type DashboardService struct {
	userRepo        repositories.UserRepository
	propertyRepo    repositories.PropertyRepository
	paymentRepo     repositories.PaymentRepository
	maintenanceRepo repositories.MaintenanceRepository
	applicationRepo repositories.ApplicationRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	userRepo repositories.UserRepository,
	propertyRepo repositories.PropertyRepository,
	paymentRepo repositories.PaymentRepository,
	maintenanceRepo repositories.MaintenanceRepository,
	applicationRepo repositories.ApplicationRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:        userRepo,
		propertyRepo:    propertyRepo,
		paymentRepo:     paymentRepo,
		maintenanceRepo: maintenanceRepo,
		applicationRepo: applicationRepo,
	}
}

// ============================================================
// Admin Dashboard
// ============================================================

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	// User Statistics
	TotalUsers     int `json:"total_users"`
	TotalAdmins    int `json:"total_admins"`
	TotalLandlords int `json:"total_landlords"`
	TotalTenants   int `json:"total_tenants"`

	// Property Statistics
	TotalProperties    int `json:"total_properties"`
	VacantProperties   int `json:"vacant_properties"`
	OccupiedProperties int `json:"occupied_properties"`

	// Payment Statistics
	TotalPayments int     `json:"total_payments"`
	TotalRevenue  float64 `json:"total_revenue"`

	// Maintenance Statistics
	OpenMaintenance     int `json:"open_maintenance"`
	ResolvedMaintenance int `json:"resolved_maintenance"`

	// Application Statistics
	PendingApplications  int `json:"pending_applications"`
	ApprovedApplications int `json:"approved_applications"`
	RejectedApplications int `json:"rejected_applications"`
}

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data.TotalUsers = len(users)
	for _, u := range users {
		switch u.Role {
		case domain.RoleAdmin:
			data.TotalAdmins++
		case domain.RoleLandlord:
			data.TotalLandlords++
		case domain.RoleTenant:
			data.TotalTenants++
		}
	}

	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data.TotalProperties = len(properties)
	data.VacantProperties, data.OccupiedProperties = countOccupancy(properties)

	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data.TotalPayments = len(payments)
	data.TotalRevenue = Total(payments)

	requests, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].IsResolved() {
			data.ResolvedMaintenance++
		} else {
			data.OpenMaintenance++
		}
	}

	applications, err := s.applicationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	data.PendingApplications, data.ApprovedApplications, data.RejectedApplications = countDecisions(applications)

	return data, nil
}

// ============================================================
// Landlord Dashboard
// ============================================================

// LandlordDashboardData represents landlord dashboard data
type LandlordDashboardData struct {
	Properties          []domain.Property `json:"properties"`
	VacantProperties    int               `json:"vacant_properties"`
	OccupiedProperties  int               `json:"occupied_properties"`
	MonthlyRentRoll     float64           `json:"monthly_rent_roll"`
	PaymentsReceived    int               `json:"payments_received"`
	AmountReceived      float64           `json:"amount_received"`
	OpenMaintenance     int               `json:"open_maintenance"`
	PendingApplications int               `json:"pending_applications"`
}

// GetLandlordDashboard returns dashboard data for one landlord's properties
func (s *DashboardService) GetLandlordDashboard(ctx context.Context, landlordID string) (*LandlordDashboardData, error) {
	properties, err := s.propertyRepo.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	data := &LandlordDashboardData{Properties: properties}
	data.VacantProperties, data.OccupiedProperties = countOccupancy(properties)

	owned := make(map[string]bool, len(properties))
	for _, p := range properties {
		owned[p.ID] = true
		data.MonthlyRentRoll += p.Rent
	}

	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if owned[p.PropertyID] {
			data.PaymentsReceived++
			data.AmountReceived += p.Amount
		}
	}

	requests, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if owned[requests[i].PropertyID] && !requests[i].IsResolved() {
			data.OpenMaintenance++
		}
	}

	applications, err := s.applicationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range applications {
		if owned[applications[i].PropertyID] && applications[i].IsPending() {
			data.PendingApplications++
		}
	}

	return data, nil
}

// ============================================================
// Tenant Dashboard
// ============================================================

// TenantDashboardData represents tenant dashboard data
type TenantDashboardData struct {
	Properties   []domain.Property          `json:"properties"`
	Payments     []domain.Payment           `json:"payments"`
	TotalPaid    float64                    `json:"total_paid"`
	Applications []domain.RentalApplication `json:"applications"`
	Pending      int                        `json:"pending"`
	Approved     int                        `json:"approved"`
	Rejected     int                        `json:"rejected"`
}

// GetTenantDashboard returns dashboard data for one tenant
func (s *DashboardService) GetTenantDashboard(ctx context.Context, tenantID string) (*TenantDashboardData, error) {
	properties, err := s.propertyRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	applications, err := s.applicationRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	data := &TenantDashboardData{
		Properties:   properties,
		Payments:     payments,
		TotalPaid:    Total(payments),
		Applications: applications,
	}
	data.Pending, data.Approved, data.Rejected = countDecisions(applications)
	return data, nil
}

func countOccupancy(properties []domain.Property) (vacant, occupied int) {
	for _, p := range properties {
		switch p.Status {
		case domain.PropertyVacant:
			vacant++
		case domain.PropertyOccupied:
			occupied++
		}
	}
	return vacant, occupied
}

func countDecisions(applications []domain.RentalApplication) (pending, approved, rejected int) {
	for _, a := range applications {
		switch a.Status {
		case domain.ApplicationPending:
			pending++
		case domain.ApplicationApproved:
			approved++
		case domain.ApplicationRejected:
			rejected++
		}
	}
	return pending, approved, rejected
}
