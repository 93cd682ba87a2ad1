package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// GetEpisodes returns every episode of a podcast
// @Summary      List episodes
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.EpisodesResponse "Episodes in insertion order"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episodes, err := deps.EpisodeService.ListForPodcast(c.Request.Context(), podcastID)
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

// GetEpisode returns one episode of a podcast
func GetEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		episodeID, ok := types.ParseUintParam(c, "episodeID")
		if !ok {
			return
		}

		episode, err := deps.EpisodeService.Get(c.Request.Context(), podcastID, episodeID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.SingleEpisodeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episode:      types.FromModelEpisode(episode),
		})
	}
}

// GetCount returns how many episodes a podcast has
func GetCount(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		count, err := deps.PodcastService.CountEpisodes(c.Request.Context(), podcastID)
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
