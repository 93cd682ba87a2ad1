package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// RegisterRoutes registers episode routes. Episodes are always
// addressed through their parent podcast.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	// GET /api/v1/podcasts/:id/episodes - All episodes of a podcast
	router.GET("/podcasts/:id/episodes", GetEpisodes(deps))

	// GET /api/v1/podcasts/:id/episodes/count - Episode count
	router.GET("/podcasts/:id/episodes/count", GetCount(deps))

	// GET /api/v1/podcasts/:id/episodes/:episodeID - One episode
	router.GET("/podcasts/:id/episodes/:episodeID", GetEpisode(deps))

	// POST /api/v1/podcasts/:id/episodes - Add an episode, creator only
	router.POST("/podcasts/:id/episodes", requireAuth, PostCreate(deps))

	// PATCH /api/v1/podcasts/:id/episodes/:episodeID - Partial update, creator only
	router.PATCH("/podcasts/:id/episodes/:episodeID", requireAuth, PatchUpdate(deps))

	// DELETE /api/v1/podcasts/:id/episodes/:episodeID - Remove an episode, creator only
	router.DELETE("/podcasts/:id/episodes/:episodeID", requireAuth, Delete(deps))
}
