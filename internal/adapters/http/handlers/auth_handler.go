package handlers

import (
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp handles user registration and signs the new user in
// POST /auth/signup
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req services.SignUpInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.SignUp(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "User not found", "Failed to sign up")
	}

	return response.Created(c, "User registered successfully", fiber.Map{
		"user": user,
	})
}

// SignIn handles user login by email
// POST /auth/signin
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req services.SignInInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.SignIn(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err,
			"No account found with this email. Please sign up first.",
			"Failed to sign in")
	}

	return response.Success(c, "Signed in successfully", fiber.Map{
		"user": user,
	})
}

// SignOut clears the session
// POST /auth/signout
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.authService.SignOut(c.UserContext()); err != nil {
		return response.InternalServerError(c, "Failed to sign out")
	}
	return response.Success(c, "Signed out successfully", nil)
}

// Me returns the signed-in user
// GET /auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return response.Success(c, "Current user retrieved successfully", fiber.Map{
		"user": currentUser(c),
	})
}

// UpdateRoleRequest represents update role request body
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateRole changes the signed-in user's role
// PUT /auth/role
func (h *AuthHandler) UpdateRole(c *fiber.Ctx) error {
	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.UpdateRole(c.UserContext(), req.Role)
	if err != nil {
		return respondError(c, err, "User not found", "Failed to update role")
	}

	return response.Success(c, "Role updated successfully", fiber.Map{
		"user": user,
	})
}
