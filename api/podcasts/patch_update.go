package podcasts

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/services/podcasts"
)

// PatchUpdate applies a partial update to the caller's podcast
func PatchUpdate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdatePodcastRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		err := deps.PodcastService.Update(c.Request.Context(), identity.ID, podcastID, podcasts.UpdatePodcastParams{
			Title:        req.Title,
			Description:  req.Description,
			CoverImage:   req.CoverImage,
			Rating:       req.Rating,
			CategoryName: req.CategoryName,
		})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Podcast updated successfully",
		})
	}
}
