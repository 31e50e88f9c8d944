// Package server assembles the Fiber application.
package server

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/services"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

type Options struct {
	// AccessLog enables the per-request access log line.
	AccessLog bool
	// Sentry installs the Sentry middleware; sentry.Init must have run.
	Sentry bool
}

// New wires services, handlers and middleware into a Fiber app.
func New(cfg *config.Config, db *gorm.DB, m *metrics.Metrics, opts Options) *fiber.App {
	accountService := services.NewAccountService(db, cfg, m)
	authService := services.NewAuthService(db, cfg, accountService, m)
	analysisService := services.NewAnalysisService(db, m)

	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Prakriti: handlers.NewPrakritiHandler(analysisService),
		Admin:    handlers.NewAdminHandler(accountService, analysisService),
		Health:   handlers.NewHealthHandler(db),
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})

	if opts.Sentry {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
		}))
	}
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, h, accountService, m)
	return app
}

// ErrorHandler turns errors that escaped a handler into the JSON error
// body. Server-side details are logged, never returned.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	var de *services.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
	case errors.As(err, &de):
		code = handlers.StatusFor(de.Kind)
		message = de.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
