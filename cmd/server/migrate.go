package main

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/services"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and the admin seed, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := connect(); err != nil {
				return err
			}
			defer database.Close(database.DB)
			slog.Info("migration completed")
			return nil
		},
	}
}

func newPromoteAdminCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "promote-admin",
		Short: "Grant the admin role to an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			cfg, err := connect()
			if err != nil {
				return err
			}
			defer database.Close(database.DB)

			accounts := services.NewAccountService(database.DB, cfg, nil)
			user, err := accounts.PromoteAdmin(email)
			if err != nil {
				return err
			}
			cmd.Printf("%s is now an admin\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the account to promote")
	return cmd
}
