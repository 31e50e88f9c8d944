package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Prakriti *handlers.PrakritiHandler
	Admin    *handlers.AdminHandler
	Health   *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers, roles middleware.RoleLookup, m *metrics.Metrics) {
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	api := app.Group("/api")

	// General API rate limiter per IP
	if cfg.RateLimitPerMinute > 0 {
		api.Use(rateLimit(cfg.RateLimitPerMinute))
	}

	api.Get("/health", h.Health.Check)

	// Auth: public, stricter rate limit
	auth := api.Group("/auth")
	if cfg.AuthRateLimitPerMin > 0 {
		auth.Post("/register", rateLimit(cfg.AuthRateLimitPerMin), h.Auth.Register)
		auth.Post("/login", rateLimit(cfg.AuthRateLimitPerMin), h.Auth.Login)
	} else {
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
	}

	// Protected routes (JWT required) - apply middleware to individual routes
	// This prevents JWT middleware from affecting public routes
	auth.Get("/current-user", middleware.JWTProtected(cfg), h.Auth.CurrentUser)
	auth.Put("/update-profile", middleware.JWTProtected(cfg), h.Auth.UpdateProfile)

	prakriti := api.Group("/prakriti")
	prakriti.Get("/traits", h.Prakriti.Traits)
	prakriti.Post("/analyze", middleware.JWTProtected(cfg), h.Prakriti.Analyze)
	prakriti.Get("/history", middleware.JWTProtected(cfg), h.Prakriti.History)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(roles))
	admin.Get("/users", h.Admin.ListUsers)
	admin.Post("/users", h.Admin.CreateUser)
	admin.Put("/users/:id", h.Admin.UpdateUser)
	admin.Delete("/users/:id", h.Admin.DeleteUser)
	admin.Get("/analyses", h.Admin.ListAnalyses)
	admin.Get("/followups/:userId", h.Admin.UserFollowUps)
	admin.Post("/followups/:analysisId", h.Admin.AddFollowUp)
	admin.Delete("/followups/:analysisId/:index", h.Admin.DeleteFollowUp)
}

func rateLimit(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               perMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
