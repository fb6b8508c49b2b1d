package routes

import (
	"residential-hub/internal/adapters/http/handlers"
	"residential-hub/internal/adapters/http/middleware"
	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup builds the services from the repository set and registers all
// routes on the app. dbCheck may be nil (in-memory storage).
func Setup(app *fiber.App, repos *repositories.Set, dbCheck handlers.HealthChecker) {
	// Services
	notifyService := services.NewNotificationService()
	authService := services.NewAuthService(repos.Accounts, repos.Sessions)
	apartmentService := services.NewApartmentService(repos.Apartments)
	bookingService := services.NewBookingService(repos.Bookings, repos.Apartments, notifyService)
	dashboardService := services.NewDashboardService(repos.Apartments, repos.Bookings)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	apartmentHandler := handlers.NewApartmentHandler(apartmentService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(dbCheck)

	requireAuth := middleware.AuthMiddleware(authService)
	adminOnly := middleware.AdminOnly()

	// Health checks
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	// Auth routes. Logout stays outside requireAuth: revoking a dead
	// token is a no-op, not an auth failure.
	auth := api.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// Apartment catalog. Listing and reading are public; creation is
	// an admin operation.
	apartments := api.Group("/apartments")
	apartments.Get("/", apartmentHandler.List)
	apartments.Get("/:id", apartmentHandler.Get)
	apartments.Post("/", requireAuth, adminOnly, apartmentHandler.Create)

	// Booking ledger
	bookings := api.Group("/bookings", requireAuth)
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/", bookingHandler.Create)
	bookings.Put("/:id/approve", adminOnly, bookingHandler.Approve)
	bookings.Put("/:id/decline", adminOnly, bookingHandler.Decline)

	// Admin dashboard
	admin := api.Group("/admin", requireAuth, adminOnly)
	admin.Get("/stats", dashboardHandler.Stats)
}
