package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// GetAll returns one page of the podcast catalog
// @Summary      Browse the catalog
// @Description  Retrieve one page of all podcasts, newest first. Pages hold twelve podcasts.
// @Tags         podcasts
// @Produce      json
// @Param        page query int false "Page number, 1-indexed" default(1)
// @Success      200 {object} types.PodcastsResponse "One page of podcasts with totals"
// @Failure      500 {object} types.ErrorResponse "Failed to list podcasts"
// @Router       /api/v1/podcasts [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := deps.PodcastService.List(c.Request.Context(), types.QueryPage(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcasts:     types.FromModelPodcasts(page.Podcasts),
			TotalResults: page.TotalResults,
			TotalPages:   page.TotalPages,
		})
	}
}
