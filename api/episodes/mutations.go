package episodes

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/services/episodes"
)

// PostCreate adds a new episode to the caller's podcast
// @Summary      Create an episode
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Param        body body types.CreateEpisodeRequest true "Episode details"
// @Success      201 {object} types.CreatedResponse "Episode created"
// @Failure      403 {object} types.ErrorResponse "Caller is not the creator"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id}/episodes [post]
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.CreateEpisodeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		id, err := deps.EpisodeService.Create(c.Request.Context(), identity.ID, podcastID, episodes.CreateEpisodeParams{
			Title:       req.Title,
			Description: req.Description,
			MediaURL:    req.MediaURL,
		})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.CreatedResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Episode created successfully",
			},
			ID: id,
		})
	}
}

// PatchUpdate applies a partial update to an episode of the caller's podcast
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
		episodeID, ok := types.ParseUintParam(c, "episodeID")
		if !ok {
			return
		}

		var req types.UpdateEpisodeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		err := deps.EpisodeService.Update(c.Request.Context(), identity.ID, podcastID, episodeID, episodes.UpdateEpisodeParams{
			Title:       req.Title,
			Description: req.Description,
			MediaURL:    req.MediaURL,
			Rating:      req.Rating,
		})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Episode updated successfully",
		})
	}
}

// Delete removes an episode of the caller's podcast
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
		episodeID, ok := types.ParseUintParam(c, "episodeID")
		if !ok {
			return
		}

		err := deps.EpisodeService.Delete(c.Request.Context(), identity.ID, podcastID, episodeID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Episode deleted successfully",
		})
	}
}
