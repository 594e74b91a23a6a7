package middleware

import (
	"rentmate/internal/core/domain"
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequireSession rejects requests when nobody is signed in and stores
// the session user in c.Locals("user") otherwise.
func RequireSession(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := authService.CurrentUser()
		if user == nil {
			return response.Unauthorized(c, "Sign in required")
		}

		c.Locals("user", user)
		c.Locals("role", user.Role)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(domain.Role)
		if !ok {
			return response.Unauthorized(c, "Sign in required")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// LandlordOrAdmin middleware allows landlord or admin roles
func LandlordOrAdmin() fiber.Handler {
	return RoleMiddleware(domain.RoleLandlord, domain.RoleAdmin)
}

// NoCacheHeaders marks session-dependent responses as uncacheable
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
