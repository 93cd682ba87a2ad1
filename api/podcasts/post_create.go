package podcasts

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/services/podcasts"
)

// PostCreate creates a new podcast owned by the caller
// @Summary      Create a podcast
// @Description  Create a podcast under the named category. The category is created on first use.
// @Tags         podcasts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.CreatePodcastRequest true "Podcast details"
// @Success      201 {object} types.CreatedResponse "Podcast created"
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Router       /api/v1/podcasts [post]
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}

		var req types.CreatePodcastRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		id, err := deps.PodcastService.Create(c.Request.Context(), identity.ID, podcasts.CreatePodcastParams{
			Title:         req.Title,
			Description:   req.Description,
			CoverImage:    req.CoverImage,
			CategoryName:  req.CategoryName,
			CategoryImage: req.CategoryImage,
		})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.CreatedResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Podcast created successfully",
			},
			ID: id,
		})
	}
}
