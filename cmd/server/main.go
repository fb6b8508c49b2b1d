package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"residential-hub/internal/adapters/http/handlers"
	"residential-hub/internal/adapters/http/middleware"
	"residential-hub/internal/adapters/http/routes"
	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/adapters/persistence/repositories/memory"
	"residential-hub/internal/config"
	"residential-hub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()

	var (
		repos   repositories.Set
		dbCheck handlers.HealthChecker
	)

	switch cfg.Storage {
	case "mysql":
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			log.Fatalf("🛑 %v", err)
		}
		defer config.CloseDatabase(db)

		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("🛑 Migration failed: %v", err)
		}

		repos = repositories.Set{
			Accounts:   repositories.NewAccountRepository(db),
			Sessions:   repositories.NewSessionRepository(db),
			Apartments: repositories.NewApartmentRepository(db),
			Bookings:   repositories.NewBookingRepository(db),
		}
		dbCheck = func() error { return config.HealthCheck(db) }
	default:
		repos = memory.NewSet()
		log.Println("✅ Using in-memory storage")
	}

	if cfg.SeedDemoData {
		if err := config.SeedDemoData(context.Background(), &repos); err != nil {
			log.Fatalf("🛑 Seeding failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "Residential Hub API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, &repos, dbCheck)

	dashboardService := services.NewDashboardService(repos.Apartments, repos.Bookings)
	cronService := services.NewCronService(dashboardService)
	cronService.Start()

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("🛑 Shutting down...")
		cronService.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Shutdown error: %v", err)
		}
	}()

	log.Printf("🚀 Residential Hub API listening on :%s (%s mode, %s storage)", cfg.Port, cfg.AppMode, cfg.Storage)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("🛑 Server error: %v", err)
	}
}
