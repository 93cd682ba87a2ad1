package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/database"
	"github.com/helious23/challenge-backend/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	db         *database.DB
	cfg        *config.Config

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server. A nil config falls back to the
// built-in timeouts and limits.
func NewServer(address string, cfg *config.Config) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	readTimeout := 30 * time.Second
	writeTimeout := 30 * time.Second
	maxHeaderBytes := 1 << 20 // 1 MB
	if cfg != nil {
		if cfg.Server.ReadTimeout > 0 {
			readTimeout = cfg.Server.ReadTimeout
		}
		if cfg.Server.WriteTimeout > 0 {
			writeTimeout = cfg.Server.WriteTimeout
		}
		if cfg.Server.MaxHeaderBytes > 0 {
			maxHeaderBytes = cfg.Server.MaxHeaderBytes
		}
	}

	return &Server{
		engine: engine,
		cfg:    cfg,
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: maxHeaderBytes,
		},
	}
}

// SetDatabase sets the database connection
func (s *Server) SetDatabase(db *database.DB) {
	s.db = db
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	s.dependencies.DB = db
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()
	return RegisterRoutes(s.engine, s.dependencies)
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(gin.Logger())
	if s.cfg == nil || s.cfg.Security.EnableCORS {
		s.engine.Use(CORS())
	}
	if s.cfg != nil && s.cfg.Security.MaxRequestSize > 0 {
		s.engine.Use(RequestSizeLimitWithSize(s.cfg.Security.MaxRequestSize))
	} else {
		s.engine.Use(RequestSizeLimit())
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
