package reviews

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/services/reviews"
)

// GetReviews returns one page of a podcast's reviews
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Param        page query int false "Page number, 1-indexed" default(1)
// @Success      200 {object} types.ReviewsResponse "One page of reviews with totals"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id}/reviews [get]
func GetReviews(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		page, err := deps.ReviewService.ListForPodcast(c.Request.Context(), podcastID, types.QueryPage(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.ReviewsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Reviews:      types.FromModelReviews(page.Reviews),
			TotalResults: page.TotalResults,
			TotalPages:   page.TotalPages,
		})
	}
}

// GetCount returns how many reviews a podcast has
func GetCount(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		count, err := deps.PodcastService.CountReviews(c.Request.Context(), podcastID)
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

// PostCreate attaches a review by the caller to a podcast
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

		var req types.CreateReviewRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		id, err := deps.ReviewService.Create(c.Request.Context(), identity.ID, podcastID, reviews.CreateReviewParams{
			Title: req.Title,
			Text:  req.Text,
		})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.CreatedResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Review created successfully",
			},
			ID: id,
		})
	}
}

// Delete removes the caller's own review
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}
		reviewID, ok := types.ParseUintParam(c, "reviewID")
		if !ok {
			return
		}

		if err := deps.ReviewService.Delete(c.Request.Context(), identity.ID, reviewID); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Review deleted successfully",
		})
	}
}
