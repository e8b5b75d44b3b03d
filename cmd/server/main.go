package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"smartlining-api/internal/adapters/http/middleware"
	"smartlining-api/internal/adapters/http/routes"
	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"
	"smartlining-api/internal/config"
	"smartlining-api/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "smartlining-api/docs" // Swagger docs
)

// @title SmartLining API
// @version 1.0
// @description Queue management backend: colas, turnos, atenciones y valoraciones.

// @contact.name API Support
// @contact.email soporte@smartlining.com

// @host localhost:3000
// @BasePath /api
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

	// Seed demo accounts, queues and events
	seeder := config.NewSeeder(db)
	if err := seeder.Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Optional redis cache for the queue-info polling endpoint.
	// Nil when unconfigured or unreachable; callers fall back to the DB.
	cache := config.ConnectRedis(cfg)

	// Nightly maintenance: token purge and stale-turno cancellation
	cronService := services.NewCronService(
		repositories.NewTurnoRepository(db),
		repositories.NewRefreshTokenRepository(db),
	)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SmartLining API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, cache and cfg for dependency injection)
	routes.Setup(app, db, cache, cfg)

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
