package podcasts

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
)

// GetSearch returns one page of podcasts whose title contains the query
// @Summary      Search podcasts by title
// @Description  Case-insensitive substring match on the podcast title, paginated.
// @Tags         podcasts
// @Produce      json
// @Param        title query string true "Title substring to search for"
// @Param        page query int false "Page number, 1-indexed" default(1)
// @Success      200 {object} types.PodcastsResponse "Matching podcasts with totals"
// @Failure      400 {object} types.ErrorResponse "Missing title query"
// @Router       /api/v1/podcasts/search [get]
func GetSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := strings.TrimSpace(c.Query("title"))
		if title == "" {
			types.SendAppError(c, apperrors.New(apperrors.ErrCodeValidation, "title query is required"))
			return
		}

		page, err := deps.PodcastService.Search(c.Request.Context(), title, types.QueryPage(c))
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
