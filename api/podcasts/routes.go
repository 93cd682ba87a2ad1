package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// RegisterRoutes registers podcast routes. Browsing is public; every
// mutation requires a token.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	// GET /api/v1/podcasts - Paginated catalog
	router.GET("/podcasts", GetAll(deps))

	// GET /api/v1/podcasts/promoted - Every promoted podcast
	router.GET("/podcasts/promoted", GetPromoted(deps))

	// GET /api/v1/podcasts/search?title=...&page=N - Title search
	router.GET("/podcasts/search", GetSearch(deps))

	// GET /api/v1/podcasts/:id - Podcast details with relations
	router.GET("/podcasts/:id", GetPodcast(deps))

	// POST /api/v1/podcasts - Create a podcast
	router.POST("/podcasts", requireAuth, PostCreate(deps))

	// PATCH /api/v1/podcasts/:id - Partial update, creator only
	router.PATCH("/podcasts/:id", requireAuth, PatchUpdate(deps))

	// DELETE /api/v1/podcasts/:id - Cascading delete, creator only
	router.DELETE("/podcasts/:id", requireAuth, Delete(deps))

	// POST /api/v1/podcasts/:id/promote - One-way promotion, creator only
	router.POST("/podcasts/:id/promote", requireAuth, PostPromote(deps))

	// GET /api/v1/me/podcasts - The caller's own podcasts
	router.GET("/me/podcasts", requireAuth, GetMine(deps))

	// GET /api/v1/me/podcasts/:id - One of the caller's podcasts
	router.GET("/me/podcasts/:id", requireAuth, GetMineByID(deps))
}
