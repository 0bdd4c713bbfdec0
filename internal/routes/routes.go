package routes

import (
	"time"

	"github.com/chetx27/wellness-tracker/internal/config"
	"github.com/chetx27/wellness-tracker/internal/handlers"
	"github.com/chetx27/wellness-tracker/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	wellnessHandler *handlers.WellnessHandler,
	reportHandler *handlers.ReportHandler,
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

	// Auth — public, with a stricter 10 req/min limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Everything below requires a valid access token.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Post("/moods", wellnessHandler.CreateMoodEntry)
	protected.Get("/moods", wellnessHandler.ListMoodEntries)
	protected.Delete("/moods/:id", wellnessHandler.DeleteMoodEntry)

	protected.Post("/habits", wellnessHandler.CreateHabitEntry)
	protected.Get("/habits", wellnessHandler.ListHabitEntries)
	protected.Delete("/habits/:id", wellnessHandler.DeleteHabitEntry)

	protected.Post("/study-sessions", wellnessHandler.CreateStudySession)
	protected.Get("/study-sessions", wellnessHandler.ListStudySessions)
	protected.Delete("/study-sessions/:id", wellnessHandler.DeleteStudySession)

	protected.Get("/reports", reportHandler.GetReport)
	protected.Post("/reports/export", reportHandler.ExportReport)
}
