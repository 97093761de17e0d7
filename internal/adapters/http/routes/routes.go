package routes

import (
	"tillpoint/internal/adapters/http/handlers"
	"tillpoint/internal/adapters/http/middleware"
	"tillpoint/internal/adapters/persistence/repositories"
	"tillpoint/internal/config"
	"tillpoint/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	cashierRepo := repositories.NewCashierRepository(db)
	managerRepo := repositories.NewManagerRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	tillRepo := repositories.NewTillRepository(db)

	// Initialize services
	authService := services.NewAuthService(cashierRepo, managerRepo, cfg)
	staffService := services.NewStaffService(cashierRepo, managerRepo)
	profileService := services.NewProfileService(profileRepo)
	tillService := services.NewTillService(tillRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	staffHandler := handlers.NewStaffHandler(staffService)
	profileHandler := handlers.NewProfileHandler(profileService)
	tillHandler := handlers.NewTillHandler(tillService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)
	authRoutes.Post("/change-passcode",
		middleware.AuthMiddleware(cfg),
		middleware.StrictRateLimiter(),
		authHandler.ChangePasscode)

	// Cashier administration (managers only)
	cashierRoutes := apiV1.Group("/cashiers")
	cashierRoutes.Use(middleware.AuthMiddleware(cfg))
	cashierRoutes.Use(middleware.ManagerOnly())
	cashierRoutes.Post("/", staffHandler.CreateCashier)
	cashierRoutes.Get("/", staffHandler.ListCashiers)
	cashierRoutes.Put("/:id", staffHandler.UpdateCashier)
	cashierRoutes.Delete("/:id", staffHandler.DeleteCashier)

	// Manager administration (managers only)
	managerRoutes := apiV1.Group("/managers")
	managerRoutes.Use(middleware.AuthMiddleware(cfg))
	managerRoutes.Use(middleware.ManagerOnly())
	managerRoutes.Post("/", staffHandler.CreateManager)
	managerRoutes.Get("/", staffHandler.ListManagers)

	// Back-office staff profiles (managers only)
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.ManagerOnly())
	userRoutes.Post("/", profileHandler.Create)
	userRoutes.Get("/", profileHandler.List)
	userRoutes.Get("/:id", profileHandler.Get)
	userRoutes.Put("/:id", profileHandler.Update)
	userRoutes.Delete("/:id", profileHandler.Delete)

	// Till records (any authenticated principal)
	tillRoutes := apiV1.Group("/till")
	tillRoutes.Use(middleware.AuthMiddleware(cfg))
	tillRoutes.Post("/", tillHandler.Open)
	tillRoutes.Get("/", tillHandler.List)
	tillRoutes.Get("/summary", tillHandler.Summary)
}
