package podcasts

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
)

// PostPromote marks the caller's podcast as promoted. Promotion is
// permanent; repeating the call only refreshes the promotion image.
func PostPromote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		// Body is optional; promotion works without an image
		var req types.PromotePodcastRequest
		if c.Request.ContentLength > 0 && !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.PodcastService.Promote(c.Request.Context(), identity.ID, podcastID, req.PromotionImage); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Podcast promoted successfully",
		})
	}
}
