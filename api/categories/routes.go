package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// RegisterRoutes registers category routes. All browsing is public;
// categories are created implicitly through podcast creation.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/categories - Every category, alphabetical
	router.GET("/categories", GetAll(deps))

	// GET /api/v1/categories/:slug - Category with one page of its podcasts
	router.GET("/categories/:slug", GetBySlug(deps))
}
