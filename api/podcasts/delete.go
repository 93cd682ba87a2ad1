package podcasts

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
)

// Delete removes the caller's podcast and everything attached to it
// @Summary      Delete a podcast
// @Description  Remove a podcast along with its episodes, reviews and every user's subscription and like edges.
// @Tags         podcasts
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.BaseResponse "Podcast deleted"
// @Failure      403 {object} types.ErrorResponse "Caller is not the creator"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PodcastService.Delete(c.Request.Context(), identity.ID, podcastID); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Podcast deleted successfully",
		})
	}
}
