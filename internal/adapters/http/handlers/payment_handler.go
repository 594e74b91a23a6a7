package handlers

import (
	"rentmate/internal/core/domain"
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// ListPayments lists payments, optionally by tenant or property
// GET /payments?tenant=&property=
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	var (
		payments []domain.Payment
		err      error
	)
	switch {
	case c.Query("tenant") != "":
		payments, err = h.paymentService.ListByTenant(c.UserContext(), c.Query("tenant"))
	case c.Query("property") != "":
		payments, err = h.paymentService.ListByProperty(c.UserContext(), c.Query("property"))
	default:
		payments, err = h.paymentService.List(c.UserContext())
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	return response.Success(c, "Payments retrieved successfully", fiber.Map{
		"payments": payments,
		"total":    services.Total(payments),
	})
}

// MyPayments lists the signed-in tenant's payments
// GET /payments/me
func (h *PaymentHandler) MyPayments(c *fiber.Ctx) error {
	payments, err := h.paymentService.ListByTenant(c.UserContext(), currentUser(c).ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	return response.Success(c, "Payments retrieved successfully", fiber.Map{
		"payments": payments,
		"total":    services.Total(payments),
	})
}

// CreatePayment records a payment. Tenants always pay as themselves.
// POST /payments
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var req services.CreatePaymentInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if user := currentUser(c); user != nil && user.Role == domain.RoleTenant {
		req.TenantID = user.ID
	}

	payment, err := h.paymentService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Payment not found", "Failed to record payment")
	}

	return response.Created(c, "Payment recorded successfully", payment)
}

// DeletePayment removes a payment record
// DELETE /payments/:id
func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	if err := h.paymentService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete payment")
	}
	return response.Success(c, "Payment deleted successfully", nil)
}
