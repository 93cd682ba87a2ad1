package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// GetPodcast returns podcast details by ID
// @Summary      Get podcast details
// @Description  Retrieve one podcast with its creator, episodes, reviews and category attached.
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID" minimum(1)
// @Success      200 {object} types.SinglePodcastResponse "Podcast with relations"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID format"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.PodcastService.Get(c.Request.Context(), podcastID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.SinglePodcastResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcast:      types.FromModelPodcast(podcast),
		})
	}
}
