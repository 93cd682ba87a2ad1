package engagement

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
)

// PostToggleSubscribe flips the caller's subscription on a podcast
// @Summary      Toggle subscription
// @Description  Subscribe to a podcast, or unsubscribe when already subscribed. The response reports the resulting state.
// @Tags         engagement
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.ToggleResponse "Subscription state after the toggle"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id}/subscribe [post]
func PostToggleSubscribe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		subscribed, err := deps.EngagementService.ToggleSubscribe(c.Request.Context(), identity.ID, podcastID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.ToggleResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Active:       subscribed,
		})
	}
}

// PostToggleLike flips the caller's like on a podcast
func PostToggleLike(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		liked, err := deps.EngagementService.ToggleLike(c.Request.Context(), identity.ID, podcastID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.ToggleResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Active:       liked,
		})
	}
}

// PostMarkPlayed records that the caller played an episode
func PostMarkPlayed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		episodeID, ok := types.ParseUintParam(c, "episodeID")
		if !ok {
			return
		}

		if err := deps.EngagementService.MarkEpisodePlayed(c.Request.Context(), identity.ID, episodeID); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Episode marked as played",
		})
	}
}
