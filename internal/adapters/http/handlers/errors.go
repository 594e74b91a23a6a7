package handlers

import (
	"errors"

	"rentmate/internal/core/domain"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// respondError maps domain errors to HTTP responses. notFound is the
// message used for domain.ErrNotFound, fallback for anything unexpected.
func respondError(c *fiber.Ctx, err error, notFound, fallback string) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.ValidationFailed(c, verr.Fields)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, notFound)
	case errors.Is(err, domain.ErrDuplicateEmail):
		return response.Conflict(c, "User with this email already exists")
	case errors.Is(err, domain.ErrInvalidTransition):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrNoSession):
		return response.Unauthorized(c, "Sign in required")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "You don't have permission to access this resource")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// currentUser returns the user stored by middleware.RequireSession
func currentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals("user").(*domain.User)
	return user
}
