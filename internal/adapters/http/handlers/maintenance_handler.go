package handlers

import (
	"rentmate/internal/core/domain"
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MaintenanceHandler handles maintenance request endpoints
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// ListRequests lists requests, optionally for one property
// GET /maintenance?property=
func (h *MaintenanceHandler) ListRequests(c *fiber.Ctx) error {
	var (
		requests []domain.MaintenanceRequest
		err      error
	)
	if propertyID := c.Query("property"); propertyID != "" {
		requests, err = h.maintenanceService.ListByProperty(c.UserContext(), propertyID)
	} else {
		requests, err = h.maintenanceService.List(c.UserContext())
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to list maintenance requests")
	}

	return response.Success(c, "Maintenance requests retrieved successfully", requests)
}

// CreateRequest raises a request
// POST /maintenance
func (h *MaintenanceHandler) CreateRequest(c *fiber.Ctx) error {
	var req services.CreateMaintenanceInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.maintenanceService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Maintenance request not found", "Failed to create maintenance request")
	}

	return response.Created(c, "Maintenance request created successfully", request)
}

// UpdateStatusRequest represents a status change request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRequestStatus moves a request to a new status
// PATCH /maintenance/:id
func (h *MaintenanceHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.maintenanceService.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err, "Maintenance request not found", "Failed to update maintenance request")
	}

	return response.Success(c, "Maintenance request updated successfully", request)
}

// DeleteRequest removes a request
// DELETE /maintenance/:id
func (h *MaintenanceHandler) DeleteRequest(c *fiber.Ctx) error {
	if err := h.maintenanceService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete maintenance request")
	}
	return response.Success(c, "Maintenance request deleted successfully", nil)
}
