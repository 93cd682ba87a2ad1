package cmd

import (
	"fmt"

	"github.com/helious23/challenge-backend/internal/database"
	"github.com/helious23/challenge-backend/internal/models"
	"github.com/spf13/cobra"
)

// migrateCmd runs the schema migration without starting the server
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the podcast catalog.

Creates or updates the tables for users, categories, podcasts,
episodes, reviews and the engagement edges. Safe to run repeatedly.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")
	return nil
}
