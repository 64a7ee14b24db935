package routes

import (
	"costtrack/internal/adapters/http/handlers"
	"costtrack/internal/adapters/http/middleware"
	"costtrack/internal/adapters/persistence/repositories"
	"costtrack/internal/config"
	"costtrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, store *session.Store, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	costRepo := repositories.NewCostRepository(db)
	tourRepo := repositories.NewTourRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// Initialize services
	oracle := services.NewStaticOracle(cfg)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, oracle, cfg)
	costService := services.NewCostService(costRepo)
	tourService := services.NewTourService(tourRepo)
	dashboardService := services.NewDashboardService(costRepo, tourRepo)
	settingsService := services.NewSettingsService(settingRepo, userRepo, cfg.Locale.Allowed)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, settingsService, store, cfg)
	costHandler := handlers.NewCostHandler(costService, settingsService, store)
	tourHandler := handlers.NewTourHandler(tourService, settingsService, store)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	settingsHandler := handlers.NewSettingsHandler(settingsService, store)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, costHandler, tourHandler,
		dashboardHandler, settingsHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	costHandler *handlers.CostHandler,
	tourHandler *handlers.TourHandler,
	dashboardHandler *handlers.DashboardHandler,
	settingsHandler *handlers.SettingsHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Cost entry routes (Authenticated users)
	costRoutes := router.Group("/costs")
	costRoutes.Use(middleware.AuthMiddleware(cfg))
	setupCostRoutes(costRoutes, costHandler)

	// Tour program routes (Authenticated users)
	tourRoutes := router.Group("/tours")
	tourRoutes.Use(middleware.AuthMiddleware(cfg))
	setupTourRoutes(tourRoutes, tourHandler)

	// Dashboard routes (Authenticated users)
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.Summary)

	// Settings routes
	settingsRoutes := router.Group("/settings")
	setupSettingsRoutes(settingsRoutes, settingsHandler, cfg)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, with a per-IP limiter in front of the per-session
	// login throttle
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupCostRoutes configures cost entry routes
func setupCostRoutes(router fiber.Router, handler *handlers.CostHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Delete("/:id", handler.Delete)
}

// setupTourRoutes configures tour program routes
func setupTourRoutes(router fiber.Router, handler *handlers.TourHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Delete("/:id", handler.Delete)
}

// setupSettingsRoutes configures language and system setting routes
func setupSettingsRoutes(router fiber.Router, handler *handlers.SettingsHandler, cfg *config.Config) {
	// Language switching is public so the login page can localize
	router.Get("/language", handler.GetLanguage)
	router.Put("/language", handler.ChangeLanguage)

	// Admin only
	router.Get("/", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.ListSettings)
	router.Get("/users", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.ListUsers)
	router.Put("/default-language", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.SetDefaultLanguage)
}
