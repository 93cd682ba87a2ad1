package reviews

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// RegisterRoutes registers review routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	// GET /api/v1/podcasts/:id/reviews - Paginated reviews, newest first
	router.GET("/podcasts/:id/reviews", GetReviews(deps))

	// GET /api/v1/podcasts/:id/reviews/count - Review count
	router.GET("/podcasts/:id/reviews/count", GetCount(deps))

	// POST /api/v1/podcasts/:id/reviews - Attach a review
	router.POST("/podcasts/:id/reviews", requireAuth, PostCreate(deps))

	// DELETE /api/v1/reviews/:reviewID - Remove own review, author only
	router.DELETE("/reviews/:reviewID", requireAuth, Delete(deps))
}
