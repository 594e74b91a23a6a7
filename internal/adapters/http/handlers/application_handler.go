package handlers

import (
	"rentmate/internal/core/domain"
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles rental application endpoints
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// ListApplications lists applications, optionally for one property
// GET /applications?property=
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	var (
		applications []domain.RentalApplication
		err          error
	)
	if propertyID := c.Query("property"); propertyID != "" {
		applications, err = h.applicationService.ListByProperty(c.UserContext(), propertyID)
	} else {
		applications, err = h.applicationService.List(c.UserContext())
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved successfully", applications)
}

// MyApplications lists the signed-in user's applications
// GET /applications/me
func (h *ApplicationHandler) MyApplications(c *fiber.Ctx) error {
	applications, err := h.applicationService.ListByTenant(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved successfully", applications)
}

// SubmitApplication files an application as the signed-in user
// POST /applications
func (h *ApplicationHandler) SubmitApplication(c *fiber.Ctx) error {
	var req services.SubmitApplicationInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.Submit(c.UserContext(), currentUser(c), &req)
	if err != nil {
		return respondError(c, err, "Application not found", "Failed to submit application")
	}

	return response.Created(c, "Application submitted successfully", application)
}

// ApproveApplication approves a pending application
// POST /applications/:id/approve
func (h *ApplicationHandler) ApproveApplication(c *fiber.Ctx) error {
	application, err := h.applicationService.Approve(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Application not found", "Failed to approve application")
	}

	return response.Success(c, "Application approved", application)
}

// RejectApplication rejects a pending application
// POST /applications/:id/reject
func (h *ApplicationHandler) RejectApplication(c *fiber.Ctx) error {
	application, err := h.applicationService.Reject(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Application not found", "Failed to reject application")
	}

	return response.Success(c, "Application rejected", application)
}

// DeleteApplication withdraws an application. Tenants may only withdraw their own.
// DELETE /applications/:id
func (h *ApplicationHandler) DeleteApplication(c *fiber.Ctx) error {
	if err := h.applicationService.Delete(c.UserContext(), currentUser(c), c.Params("id")); err != nil {
		return respondError(c, err, "Application not found", "Failed to delete application")
	}
	return response.Success(c, "Application deleted successfully", nil)
}
