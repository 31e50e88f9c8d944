package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	if err := newRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()
	root := &cobra.Command{
		Use:           "prakriti",
		Short:         "Prakriti assessment API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newMigrateCommand(), newPromoteAdminCommand())
	return root
}

// connect loads configuration and opens the migrated database.
func connect() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := database.Connect(cfg); err != nil {
		return nil, err
	}
	if err := database.Migrate(database.DB); err != nil {
		database.Close(database.DB)
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	if _, err := database.SeedAdmins(database.DB, cfg.AdminEmails); err != nil {
		database.Close(database.DB)
		return nil, err
	}
	return cfg, nil
}
