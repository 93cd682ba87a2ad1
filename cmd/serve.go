package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/helious23/challenge-backend/api"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/database"
	"github.com/helious23/challenge-backend/internal/models"
	"github.com/helious23/challenge-backend/internal/services/auth"
	"github.com/helious23/challenge-backend/internal/services/categories"
	"github.com/helious23/challenge-backend/internal/services/engagement"
	"github.com/helious23/challenge-backend/internal/services/episodes"
	"github.com/helious23/challenge-backend/internal/services/podcasts"
	"github.com/helious23/challenge-backend/internal/services/reviews"
	"github.com/helious23/challenge-backend/internal/services/users"
	"github.com/helious23/challenge-backend/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the podcast catalog API server with the configured settings.

Example:
  podcast-api serve
  podcast-api serve --port 9090
  podcast-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] Closing database: %v", err)
		}
	}()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	deps := buildDependencies(db, cfg)

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort), cfg)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] Server is ready to handle requests at %s:%d", serverHost, serverPort)

	select {
	case <-stop:
		log.Println("[INFO] Shutting down server...")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
		log.Println("[INFO] Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("[INFO] Server gracefully stopped")
	return nil
}

// buildDependencies wires the repositories and services behind the handlers
func buildDependencies(db *database.DB, cfg *config.Config) *types.Dependencies {
	authService := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	categoryService := categories.NewService(categories.NewRepository(db.DB))
	podcastService := podcasts.NewService(
		podcasts.NewRepository(db.DB),
		categoryService,
		podcasts.WithPageSize(cfg.Pagination.PageSize),
	)

	return &types.Dependencies{
		DB:                db,
		AuthService:       authService,
		UserService:       users.NewService(users.NewRepository(db.DB), authService),
		PodcastService:    podcastService,
		EpisodeService:    episodes.NewService(episodes.NewRepository(db.DB), podcastService),
		ReviewService:     reviews.NewService(reviews.NewRepository(db.DB), podcastService),
		CategoryService:   categoryService,
		EngagementService: engagement.NewService(engagement.NewRepository(db.DB)),
	}
}
