package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// GetPromoted returns every promoted podcast. This list is not
// paginated; promotion is rare.
func GetPromoted(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		promoted, err := deps.PodcastService.Promoted(c.Request.Context())
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		totalPages := 0
		if len(promoted) > 0 {
			totalPages = 1
		}

		types.SendSuccess(c, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcasts:     types.FromModelPodcasts(promoted),
			TotalResults: int64(len(promoted)),
			TotalPages:   totalPages,
		})
	}
}
