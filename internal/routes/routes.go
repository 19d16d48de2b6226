package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/docpoint/booking-backend/internal/config"
	"github.com/docpoint/booking-backend/internal/handlers"
	"github.com/docpoint/booking-backend/internal/middleware"
	"github.com/docpoint/booking-backend/internal/repository"
	"github.com/docpoint/booking-backend/internal/token"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	tokens *token.Service,
	users repository.UserRepository,
	authHandler *handlers.AuthHandler,
	doctorHandler *handlers.DoctorHandler,
	appointmentHandler *handlers.AppointmentHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)

	// Doctor directory — patients only
	doctors := api.Group("/doctors",
		middleware.RequireAuth(cfg),
		middleware.RequirePatient(tokens, users),
	)
	doctors.Get("/all", doctorHandler.ListAll)

	// Appointments — listing for any authenticated identity, booking
	// for patients only
	appointments := api.Group("/appointments", middleware.RequireAuth(cfg))
	appointments.Get("/all", appointmentHandler.ListMine)
	appointments.Post("/create",
		middleware.RequirePatient(tokens, users),
		appointmentHandler.Create,
	)
}
