package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tillpoint/internal/adapters/http/middleware"
	"tillpoint/internal/adapters/http/routes"
	"tillpoint/internal/adapters/persistence/models"
	"tillpoint/internal/adapters/persistence/repositories"
	"tillpoint/internal/config"
	"tillpoint/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title tillpoint POS API
// @version 1.0
// @description Point-of-sale back-end: staff authentication, passcode migration, till records.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

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

	// Passcode migration sweep: rewrite legacy plaintext passcodes
	// before the listener starts. Idempotent, so rerunning on every
	// boot is safe.
	cashierRepo := repositories.NewCashierRepository(db)
	managerRepo := repositories.NewManagerRepository(db)
	migrationService := services.NewMigrationService(cashierRepo, managerRepo)
	migrationService.Run(context.Background())

	// Seed default manager on a fresh install
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Start cron service (nightly passcode sweep, daily till summary)
	tillService := services.NewTillService(repositories.NewTillRepository(db))
	cronService := services.NewCronService(migrationService, tillService)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "tillpoint POS API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

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
