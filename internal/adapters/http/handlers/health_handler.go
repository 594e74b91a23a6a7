package handlers

import (
	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/config"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg   *config.Config
	db    *gorm.DB
	store *store.DocumentStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, db *gorm.DB, st *store.DocumentStore) *HealthHandler {
	return &HealthHandler{
		cfg:   cfg,
		db:    db,
		store: st,
	}
}

// Root handles root endpoint
// GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "RentMate API v1.0 is running",
		"mode":    h.cfg.AppMode,
	})
}

// HealthCheck reports the session database and data directory state
// GET /health
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	sessionStatus := "healthy"
	if err := config.HealthCheck(h.db); err != nil {
		sessionStatus = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":      "healthy",
			"sessions": sessionStatus,
			"dataDir":  h.store.Dir(),
		},
	})
}

// APIInfo handles API v1 info
// GET /api/v1
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "RentMate API v1.0",
		"version": "1.0.0",
	})
}
