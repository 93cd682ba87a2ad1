package engagement

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
)

// GetSubscriptions returns one page of the caller's subscribed podcasts
func GetSubscriptions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}

		page, err := deps.EngagementService.Subscriptions(c.Request.Context(), identity.ID, types.QueryPage(c))
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

// GetLikes returns one page of the caller's liked podcasts
func GetLikes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}

		page, err := deps.EngagementService.Likes(c.Request.Context(), identity.ID, types.QueryPage(c))
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

// GetPlayed returns every episode the caller has marked as played
func GetPlayed(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}

		episodes, err := deps.EngagementService.PlayedEpisodes(c.Request.Context(), identity.ID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episodes:     types.FromModelEpisodes(episodes),
		})
	}
}

// GetSubscriberCount returns how many users subscribe to a podcast
func GetSubscriberCount(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		count, err := deps.EngagementService.CountSubscribers(c.Request.Context(), podcastID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.CountResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Count:        count,
		})
	}
}

// GetLikerCount returns how many users like a podcast
func GetLikerCount(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		count, err := deps.EngagementService.CountLikers(c.Request.Context(), podcastID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.CountResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Count:        count,
		})
	}
}
