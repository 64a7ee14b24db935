package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"costtrack/internal/adapters/http/middleware"
	"costtrack/internal/adapters/http/routes"
	"costtrack/internal/adapters/persistence/models"
	"costtrack/internal/adapters/persistence/repositories"
	"costtrack/internal/config"
	"costtrack/internal/core/services"
	"costtrack/internal/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	_ "costtrack/docs" // Swagger docs
)

// @title CostTrack API
// @version 1.0
// @description Expense and tour program tracking API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@costtrack.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed admin user and default settings
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Load translation bundles
	i18n.Init()

	// Nightly cleanup of expired refresh tokens
	cleanupService := services.NewCleanupService(repositories.NewRefreshTokenRepository(db))
	cleanupService.Start()
	defer cleanupService.Stop()

	// Session store holds the login throttle counters and the
	// display language per browser session
	store := session.New(session.Config{
		KeyLookup:      "cookie:session_id",
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Cookie.Secure,
		CookieSameSite: cfg.Cookie.SameSite,
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CostTrack API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, session store and cfg for dependency injection)
	routes.Setup(app, db, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
