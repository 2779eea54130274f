// Package routes wires the admin services into the Fiber app.
package routes

import (
	"time"

	"motoradmin/internal/handlers"
	"motoradmin/internal/middleware"
	"motoradmin/internal/repositories"
	"motoradmin/internal/services/auth"
	"motoradmin/internal/services/dashboard"
	"motoradmin/internal/services/moderation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// Dependencies are the stores and settings the routes are built from.
type Dependencies struct {
	Gateway   repositories.Gateway
	Snapshots dashboard.SnapshotCache
	Sessions  auth.SessionStore

	Credentials auth.Credentials
	JWTSecret   string
	SessionTTL  time.Duration
	// LoginRateLimit caps login attempts per IP and minute; 0 disables it.
	LoginRateLimit int

	HealthChecks map[string]handlers.Pinger
	Log          *zap.Logger
}

// SetupRoutes builds the services and registers every admin route.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	dashboardService := dashboard.NewService(deps.Gateway, deps.Snapshots, log.Named("dashboard"))
	authService := auth.NewService(auth.Config{
		Credentials: deps.Credentials,
		JWTSecret:   deps.JWTSecret,
		SessionTTL:  deps.SessionTTL,
	}, deps.Sessions, log.Named("auth"))
	moderationService := moderation.NewService(deps.Gateway, dashboardService, log.Named("moderation"))

	authHandler := handlers.NewAuthHandler(authService, dashboardService, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, authService, log)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	confirmationHandler := handlers.NewConfirmationHandler(authService, moderationService, log)
	healthHandler := handlers.NewHealthHandler(deps.HealthChecks)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api/admin")
	if deps.LoginRateLimit > 0 {
		api.Post("/login", loginLimiter(deps.LoginRateLimit), authHandler.Login)
	} else {
		api.Post("/login", authHandler.Login)
	}

	authMiddleware := middleware.NewAuthMiddleware(authService, log)
	admin := api.Group("", authMiddleware.Handler)

	admin.Post("/logout", authHandler.Logout)
	admin.Get("/session", authHandler.Session)

	setupDashboardRoutes(admin, dashboardHandler)
	setupModerationRoutes(admin, moderationHandler)
	setupConfirmationRoutes(admin, confirmationHandler)
}

func loginLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}

func setupDashboardRoutes(router fiber.Router, h *handlers.DashboardHandler) {
	router.Get("/stats", h.Stats)
	router.Post("/refresh", h.Refresh)

	records := router.Group("/records")
	records.Get("/", h.Records)
	records.Post("/next", h.NextPage)
	records.Post("/prev", h.PrevPage)

	router.Get("/cars", h.Cars)
	router.Get("/verifications/:id/documents", h.Documents)
}

func setupModerationRoutes(router fiber.Router, h *handlers.ModerationHandler) {
	verifications := router.Group("/verifications")
	verifications.Post("/:id/approve", h.Approve)
	verifications.Post("/:id/reject", h.Reject)

	users := router.Group("/users")
	users.Post("/:id/verify", h.Verify)
	users.Post("/:id/unverify", h.Unverify)
	users.Delete("/:id", h.DeleteUser)
}

func setupConfirmationRoutes(router fiber.Router, h *handlers.ConfirmationHandler) {
	router.Post("/confirmation", h.Open)
	router.Post("/confirmation/confirm", h.Confirm)
	router.Delete("/confirmation", h.Cancel)
}
