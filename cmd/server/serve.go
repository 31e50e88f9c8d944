package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/server"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := connect()
			if err != nil {
				return err
			}

			// Database log handler (ERROR+ async batch)
			dbLogHandler := logging.NewDBHandler(database.DB, cfg.LogFlushInterval)
			logging.Attach(dbLogHandler)

			cleanupDone := make(chan struct{})
			logging.StartCleanup(database.DB, cfg.LogRetention, cleanupDone)

			// Sentry error tracking
			sentryEnabled := false
			if cfg.SentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:              cfg.SentryDSN,
					EnableTracing:    true,
					TracesSampleRate: 0.2,
					Environment:      cfg.AppEnv,
				}); err != nil {
					slog.Error("sentry init failed", "error", err)
				} else {
					sentryEnabled = true
				}
			}

			app := server.New(cfg, database.DB, metrics.New(), server.Options{
				AccessLog: true,
				Sentry:    sentryEnabled,
			})

			// Graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			listenErr := make(chan error, 1)
			go func() {
				slog.Info("server starting", "port", cfg.Port)
				listenErr <- app.Listen(":" + cfg.Port)
			}()

			select {
			case <-quit:
				slog.Info("shutting down server...")
			case err = <-listenErr:
				slog.Error("server failed to start", "error", err)
			}

			if shutdownErr := app.Shutdown(); shutdownErr != nil {
				slog.Error("server shutdown error", "error", shutdownErr)
			}

			close(cleanupDone)
			logging.Setup()
			dbLogHandler.Stop()
			if sentryEnabled {
				sentry.Flush(2 * time.Second)
			}

			if closeErr := database.Close(database.DB); closeErr != nil {
				slog.Error("database close error", "error", closeErr)
			}

			slog.Info("server stopped")
			return err
		},
	}
}
