package handlers

import (
	"time"

	"rentmate/internal/core/domain"
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
	reminderService  *services.RentReminderService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService, reminderService *services.RentReminderService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		reminderService:  reminderService,
	}
}

// GetAdminDashboard returns the system overview (Admin only)
// GET /dashboard/admin
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(c.UserContext())
	if err != nil {
		return response.InternalServerError(c, "Failed to get admin dashboard")
	}

	return response.Success(c, "Admin dashboard retrieved successfully", data)
}

// GetLandlordDashboard returns the signed-in landlord's portfolio
// GET /dashboard/landlord
func (h *DashboardHandler) GetLandlordDashboard(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Sign in required")
	}

	data, err := h.dashboardService.GetLandlordDashboard(c.UserContext(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get landlord dashboard")
	}

	return response.Success(c, "Landlord dashboard retrieved successfully", data)
}

// GetTenantDashboard returns the signed-in tenant's rentals and payments
// GET /dashboard/tenant
func (h *DashboardHandler) GetTenantDashboard(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Sign in required")
	}

	data, err := h.dashboardService.GetTenantDashboard(c.UserContext(), user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get tenant dashboard")
	}

	return response.Success(c, "Tenant dashboard retrieved successfully", data)
}

// GetMyDashboard picks the dashboard matching the session role
// GET /dashboard
func (h *DashboardHandler) GetMyDashboard(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Sign in required")
	}

	switch user.Role {
	case domain.RoleAdmin:
		return h.GetAdminDashboard(c)
	case domain.RoleLandlord:
		return h.GetLandlordDashboard(c)
	default:
		return h.GetTenantDashboard(c)
	}
}

// GetOutstandingRent lists tenants with no payment this month (Landlord/Admin)
// GET /dashboard/outstanding
func (h *DashboardHandler) GetOutstandingRent(c *fiber.Ctx) error {
	due, err := h.reminderService.Outstanding(c.UserContext(), time.Now())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute outstanding rent")
	}

	if user := currentUser(c); user != nil && user.Role == domain.RoleLandlord {
		mine, err := h.dashboardService.GetLandlordDashboard(c.UserContext(), user.ID)
		if err != nil {
			return response.InternalServerError(c, "Failed to compute outstanding rent")
		}
		owned := make(map[string]bool, len(mine.Properties))
		for _, p := range mine.Properties {
			owned[p.ID] = true
		}
		filtered := due[:0]
		for _, d := range due {
			if owned[d.PropertyID] {
				filtered = append(filtered, d)
			}
		}
		due = filtered
	}

	return response.Success(c, "Outstanding rent retrieved successfully", due)
}
