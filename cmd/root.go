package cmd

import (
	"fmt"
	"os"

	"github.com/helious23/challenge-backend/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcast-api",
	Short: "Podcast catalog API server",
	Long: `Podcast Catalog API - a hosting and discovery backend for podcasts

Hosts create podcasts and episodes under named categories; listeners
browse the catalog, subscribe, like, review, and track the episodes
they have played.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig initializes the configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	return config.GetConfig()
}
