package services

import (
	"context"
	"testing"
	"time"

	"rentmate/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDashboard(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()

	for _, u := range []domain.User{
		{ID: "a1", Email: "a@x.com", Role: domain.RoleAdmin},
		{ID: "l1", Email: "l@x.com", Role: domain.RoleLandlord},
		{ID: "t1", Email: "t1@x.com", Role: domain.RoleTenant},
		{ID: "t2", Email: "t2@x.com", Role: domain.RoleTenant},
	} {
		u := u
		require.NoError(t, env.users.CreateUnique(ctx, &u))
	}
	for _, p := range []domain.Property{
		{ID: "p1", LandlordID: "l1", Rent: 1000, Tenants: []string{"t1"}, Status: domain.PropertyOccupied},
		{ID: "p2", LandlordID: "l1", Rent: 500, Tenants: []string{}, Status: domain.PropertyVacant},
		{ID: "p3", LandlordID: "l9", Rent: 700, Tenants: []string{"t2"}, Status: domain.PropertyOccupied},
	} {
		p := p
		require.NoError(t, env.properties.Create(ctx, &p))
	}
	for _, p := range []domain.Payment{
		{ID: "pay1", PropertyID: "p1", TenantID: "t1", Amount: 1000, Date: time.Now()},
		{ID: "pay2", PropertyID: "p3", TenantID: "t2", Amount: 700, Date: time.Now()},
	} {
		p := p
		require.NoError(t, env.payments.Create(ctx, &p))
	}
	for _, m := range []domain.MaintenanceRequest{
		{ID: "m1", PropertyID: "p1", Status: domain.MaintenanceOpen},
		{ID: "m2", PropertyID: "p1", Status: domain.MaintenanceResolved},
		{ID: "m3", PropertyID: "p3", Status: domain.MaintenanceInProgress},
	} {
		m := m
		require.NoError(t, env.maintenance.Create(ctx, &m))
	}
	for _, a := range []domain.RentalApplication{
		{ID: "ap1", PropertyID: "p2", TenantID: "t1", Status: domain.ApplicationPending, EmploymentStatus: domain.EmploymentEmployed},
		{ID: "ap2", PropertyID: "p2", TenantID: "t2", Status: domain.ApplicationRejected, EmploymentStatus: domain.EmploymentStudent},
		{ID: "ap3", PropertyID: "p3", TenantID: "t2", Status: domain.ApplicationApproved, EmploymentStatus: domain.EmploymentEmployed},
	} {
		a := a
		require.NoError(t, env.applications.Create(ctx, &a))
	}
}

func newDashboard(env *testEnv) *DashboardService {
	return NewDashboardService(env.users, env.properties, env.payments, env.maintenance, env.applications)
}

func TestDashboardService_Admin(t *testing.T) {
	env := newTestEnv(t)
	seedDashboard(t, env)

	data, err := newDashboard(env).GetAdminDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, data.TotalUsers)
	assert.Equal(t, 1, data.TotalAdmins)
	assert.Equal(t, 1, data.TotalLandlords)
	assert.Equal(t, 2, data.TotalTenants)
	assert.Equal(t, 3, data.TotalProperties)
	assert.Equal(t, 1, data.VacantProperties)
	assert.Equal(t, 2, data.OccupiedProperties)
	assert.Equal(t, 2, data.TotalPayments)
	assert.Equal(t, float64(1700), data.TotalRevenue)
	assert.Equal(t, 2, data.OpenMaintenance)
	assert.Equal(t, 1, data.ResolvedMaintenance)
	assert.Equal(t, 1, data.PendingApplications)
	assert.Equal(t, 1, data.ApprovedApplications)
	assert.Equal(t, 1, data.RejectedApplications)
}

func TestDashboardService_Landlord(t *testing.T) {
	env := newTestEnv(t)
	seedDashboard(t, env)

	data, err := newDashboard(env).GetLandlordDashboard(context.Background(), "l1")
	require.NoError(t, err)

	assert.Len(t, data.Properties, 2)
	assert.Equal(t, 1, data.VacantProperties)
	assert.Equal(t, 1, data.OccupiedProperties)
	assert.Equal(t, float64(1500), data.MonthlyRentRoll)
	assert.Equal(t, 1, data.PaymentsReceived)
	assert.Equal(t, float64(1000), data.AmountReceived)
	assert.Equal(t, 1, data.OpenMaintenance)
	assert.Equal(t, 1, data.PendingApplications)
}

func TestDashboardService_Tenant(t *testing.T) {
	env := newTestEnv(t)
	seedDashboard(t, env)

	data, err := newDashboard(env).GetTenantDashboard(context.Background(), "t2")
	require.NoError(t, err)

	require.Len(t, data.Properties, 1)
	assert.Equal(t, "p3", data.Properties[0].ID)
	assert.Len(t, data.Payments, 1)
	assert.Equal(t, float64(700), data.TotalPaid)
	assert.Len(t, data.Applications, 2)
	assert.Equal(t, 0, data.Pending)
	assert.Equal(t, 1, data.Approved)
	assert.Equal(t, 1, data.Rejected)
}

func TestDashboardService_EmptyStore(t *testing.T) {
	data, err := newDashboard(newTestEnv(t)).GetAdminDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &AdminDashboardData{}, data)
}
