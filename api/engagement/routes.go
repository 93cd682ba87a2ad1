package engagement

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// RegisterRoutes registers the edge routes: subscriptions, likes and
// played marks. Counts are public; everything else needs a token.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	// POST /api/v1/podcasts/:id/subscribe - Toggle subscription
	router.POST("/podcasts/:id/subscribe", requireAuth, PostToggleSubscribe(deps))

	// POST /api/v1/podcasts/:id/like - Toggle like
	router.POST("/podcasts/:id/like", requireAuth, PostToggleLike(deps))

	// GET /api/v1/podcasts/:id/subscribers/count - Subscriber count
	router.GET("/podcasts/:id/subscribers/count", GetSubscriberCount(deps))

	// GET /api/v1/podcasts/:id/likes/count - Liker count
	router.GET("/podcasts/:id/likes/count", GetLikerCount(deps))

	// POST /api/v1/episodes/:episodeID/played - Mark an episode played
	router.POST("/episodes/:episodeID/played", requireAuth, PostMarkPlayed(deps))

	// GET /api/v1/me/subscriptions - The caller's subscriptions
	router.GET("/me/subscriptions", requireAuth, GetSubscriptions(deps))

	// GET /api/v1/me/likes - The caller's liked podcasts
	router.GET("/me/likes", requireAuth, GetLikes(deps))

	// GET /api/v1/me/played - The caller's played episodes
	router.GET("/me/played", requireAuth, GetPlayed(deps))
}
