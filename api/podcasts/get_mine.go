package podcasts

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
)

// GetMine returns one page of the caller's own podcasts
func GetMine(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}

		page, err := deps.PodcastService.My(c.Request.Context(), identity.ID, types.QueryPage(c))
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

// GetMineByID returns one of the caller's podcasts with relations.
// Other creators' podcasts are reported as missing.
func GetMineByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.PodcastService.MyOne(c.Request.Context(), identity.ID, podcastID)
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
