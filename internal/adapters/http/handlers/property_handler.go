package handlers

import (
	"rentmate/internal/core/domain"
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PropertyHandler handles property endpoints
type PropertyHandler struct {
	propertyService *services.PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// propertyView adds the display-only map pin to a property
type propertyView struct {
	domain.Property
	Location domain.Coordinate `json:"location"`
}

func toPropertyViews(properties []domain.Property) []propertyView {
	views := make([]propertyView, 0, len(properties))
	for i := range properties {
		views = append(views, propertyView{
			Property: properties[i],
			Location: properties[i].Location(),
		})
	}
	return views
}

// ListProperties lists properties, optionally for one landlord
// GET /properties?landlord=
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	var (
		properties []domain.Property
		err        error
	)
	if landlordID := c.Query("landlord"); landlordID != "" {
		properties, err = h.propertyService.ListByLandlord(c.UserContext(), landlordID)
	} else {
		properties, err = h.propertyService.List(c.UserContext())
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to list properties")
	}

	return response.Success(c, "Properties retrieved successfully", toPropertyViews(properties))
}

// GetProperty gets one property
// GET /properties/:id
func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	property, err := h.propertyService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Property not found", "Failed to get property")
	}

	return response.Success(c, "Property retrieved successfully", propertyView{
		Property: *property,
		Location: property.Location(),
	})
}

// CreateProperty lists a new property. Landlords list under their own id.
// POST /properties
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var req services.CreatePropertyInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if user := currentUser(c); user != nil && user.Role == domain.RoleLandlord {
		req.LandlordID = user.ID
	}

	property, err := h.propertyService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Property not found", "Failed to create property")
	}

	return response.Created(c, "Property created successfully", property)
}

// DeleteProperty removes a property
// DELETE /properties/:id
func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	if err := h.propertyService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete property")
	}
	return response.Success(c, "Property deleted successfully", nil)
}

// UpdateProperty changes a property's status and/or rent
// PATCH /properties/:id
func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	var req services.UpdatePropertyInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	property, err := h.propertyService.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "Property not found", "Failed to update property")
	}

	return response.Success(c, "Property updated successfully", property)
}

// TenantRequest represents tenant assignment request body
type TenantRequest struct {
	TenantID string `json:"tenantId"`
}

// AssignTenant puts a tenant on a property. Tenants may only assign themselves.
// POST /properties/:id/tenants
func (h *PropertyHandler) AssignTenant(c *fiber.Ctx) error {
	var req TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if user := currentUser(c); user != nil && user.Role == domain.RoleTenant {
		req.TenantID = user.ID
	}

	property, err := h.propertyService.AssignTenant(c.UserContext(), c.Params("id"), req.TenantID)
	if err != nil {
		return respondError(c, err, "Property not found", "Failed to assign tenant")
	}

	return response.Success(c, "Tenant assigned successfully", property)
}

// RemoveTenant takes a tenant off a property
// DELETE /properties/:id/tenants/:tenantId
func (h *PropertyHandler) RemoveTenant(c *fiber.Ctx) error {
	property, err := h.propertyService.RemoveTenant(c.UserContext(), c.Params("id"), c.Params("tenantId"))
	if err != nil {
		return respondError(c, err, "Property not found", "Failed to remove tenant")
	}

	return response.Success(c, "Tenant removed successfully", property)
}
