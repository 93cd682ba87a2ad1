package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/categories"
	"github.com/helious23/challenge-backend/api/engagement"
	"github.com/helious23/challenge-backend/api/episodes"
	"github.com/helious23/challenge-backend/api/health"
	"github.com/helious23/challenge-backend/api/podcasts"
	"github.com/helious23/challenge-backend/api/reviews"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/api/users"
	"github.com/helious23/challenge-backend/api/version"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) error {
	if deps == nil || deps.AuthService == nil {
		return fmt.Errorf("handler dependencies are not configured")
	}

	// Public infrastructure routes
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	requireAuth := authmw.RequireAuth(deps.AuthService)

	// API v1 routes
	v1 := engine.Group("/api/v1")
	users.RegisterRoutes(v1, deps, requireAuth)
	podcasts.RegisterRoutes(v1, deps, requireAuth)
	episodes.RegisterRoutes(v1, deps, requireAuth)
	reviews.RegisterRoutes(v1, deps, requireAuth)
	categories.RegisterRoutes(v1, deps)
	engagement.RegisterRoutes(v1, deps, requireAuth)

	return nil
}
