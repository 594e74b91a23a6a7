package handlers

import (
	"rentmate/internal/core/services"
	"rentmate/internal/pkg/pagination"
	"rentmate/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// ListUsers handles listing all users (Admin only)
// GET /users?role=&page=&limit=
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext(), c.Query("role"))
	if err != nil {
		return respondError(c, err, "User not found", "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully",
		pagination.Page(users, pagination.GetParams(c)))
}

// GetUser handles getting a user by ID (Admin only)
// GET /users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "User not found", "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user,
	})
}

// UpdateUser handles updating a user (Admin only)
// PUT /users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req services.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateUser(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "User not found", "Failed to update user")
	}

	return response.Success(c, "User updated successfully", fiber.Map{
		"user": user,
	})
}

// DeleteUser handles deleting a user (Admin only)
// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete user")
	}
	return response.Success(c, "User deleted successfully", nil)
}

// ClearUsers empties the users collection (Admin only)
// DELETE /users
func (h *UserHandler) ClearUsers(c *fiber.Ctx) error {
	if err := h.authService.ClearAllUsers(c.UserContext()); err != nil {
		return response.InternalServerError(c, "Failed to clear users")
	}
	return response.Success(c, "All users cleared", nil)
}
