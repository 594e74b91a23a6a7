package routes

import (
	"context"

	"rentmate/internal/adapters/http/handlers"
	"rentmate/internal/adapters/http/middleware"
	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/config"
	"rentmate/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup configures all routes for the application and returns the auth
// service holding the process-wide session
func Setup(
	ctx context.Context,
	app *fiber.App,
	st *store.DocumentStore,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
) *services.AuthService {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(st)
	propertyRepo := repositories.NewPropertyRepository(st)
	paymentRepo := repositories.NewPaymentRepository(st)
	maintenanceRepo := repositories.NewMaintenanceRepository(st)
	applicationRepo := repositories.NewApplicationRepository(st)

	// Initialize services
	authService := services.NewAuthService(ctx, userRepo, st, log)
	userService := services.NewUserService(userRepo)
	propertyService := services.NewPropertyService(propertyRepo, log)
	paymentService := services.NewPaymentService(paymentRepo, log)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, log)
	applicationService := services.NewApplicationService(applicationRepo, log)
	dashboardService := services.NewDashboardService(userRepo, propertyRepo, paymentRepo, maintenanceRepo, applicationRepo)
	reminderService := services.NewRentReminderService(propertyRepo, paymentRepo, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, db, st)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, reminderService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	session := middleware.RequireSession(authService)

	setupAuthRoutes(apiV1.Group("/auth", middleware.NoCacheHeaders()), authHandler, session)
	setupUserRoutes(apiV1.Group("/users", session, middleware.AdminOnly()), userHandler)
	setupPropertyRoutes(apiV1.Group("/properties", session), propertyHandler)
	setupPaymentRoutes(apiV1.Group("/payments", session), paymentHandler)
	setupMaintenanceRoutes(apiV1.Group("/maintenance", session), maintenanceHandler)
	setupApplicationRoutes(apiV1.Group("/applications", session), applicationHandler)
	setupDashboardRoutes(apiV1.Group("/dashboard", session, middleware.NoCacheHeaders()), dashboardHandler)

	return authService
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, session fiber.Handler) {
	// Public routes
	router.Post("/signup", middleware.AuthRateLimiter(), handler.SignUp)
	router.Post("/signin", middleware.AuthRateLimiter(), handler.SignIn)
	router.Post("/signout", handler.SignOut)

	// Session routes
	router.Get("/me", session, handler.Me)
	router.Put("/role", session, handler.UpdateRole)
}

// setupUserRoutes configures user management routes (Admin only)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Delete("/", handler.ClearUsers)
	router.Get("/:id", handler.GetUser)
	router.Put("/:id", handler.UpdateUser)
	router.Delete("/:id", handler.DeleteUser)
}

// setupPropertyRoutes configures property routes
func setupPropertyRoutes(router fiber.Router, handler *handlers.PropertyHandler) {
	router.Get("/", handler.ListProperties)
	router.Get("/:id", handler.GetProperty)
	router.Post("/:id/tenants", handler.AssignTenant)

	// Landlord/Admin routes
	owner := router.Group("", middleware.LandlordOrAdmin())
	owner.Post("/", handler.CreateProperty)
	owner.Patch("/:id", handler.UpdateProperty)
	owner.Delete("/:id", handler.DeleteProperty)
	owner.Delete("/:id/tenants/:tenantId", handler.RemoveTenant)
}

// setupPaymentRoutes configures payment routes
func setupPaymentRoutes(router fiber.Router, handler *handlers.PaymentHandler) {
	router.Get("/me", handler.MyPayments)
	router.Post("/", handler.CreatePayment)

	router.Get("/", middleware.LandlordOrAdmin(), handler.ListPayments)
	router.Delete("/:id", middleware.AdminOnly(), handler.DeletePayment)
}

// setupMaintenanceRoutes configures maintenance request routes
func setupMaintenanceRoutes(router fiber.Router, handler *handlers.MaintenanceHandler) {
	router.Get("/", handler.ListRequests)
	router.Post("/", handler.CreateRequest)

	router.Patch("/:id", middleware.LandlordOrAdmin(), handler.UpdateRequestStatus)
	router.Delete("/:id", middleware.LandlordOrAdmin(), handler.DeleteRequest)
}

// setupApplicationRoutes configures rental application routes
func setupApplicationRoutes(router fiber.Router, handler *handlers.ApplicationHandler) {
	router.Get("/me", handler.MyApplications)
	router.Post("/", handler.SubmitApplication)
	router.Delete("/:id", handler.DeleteApplication)

	router.Get("/", middleware.LandlordOrAdmin(), handler.ListApplications)
	router.Post("/:id/approve", middleware.LandlordOrAdmin(), handler.ApproveApplication)
	router.Post("/:id/reject", middleware.LandlordOrAdmin(), handler.RejectApplication)
}

// setupDashboardRoutes configures dashboard routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	// Auto-detect role dashboard (All signed-in users)
	router.Get("/", handler.GetMyDashboard)
	router.Get("/tenant", handler.GetTenantDashboard)

	router.Get("/landlord", middleware.LandlordOrAdmin(), handler.GetLandlordDashboard)
	router.Get("/outstanding", middleware.LandlordOrAdmin(), handler.GetOutstandingRent)
	router.Get("/admin", middleware.AdminOnly(), handler.GetAdminDashboard)
}
