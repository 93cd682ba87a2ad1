package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// GetAll returns every category with its podcast count
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := deps.CategoryService.All(c.Request.Context())
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		result := types.FromModelCategories(categories)
		for i := range result {
			count, err := deps.CategoryService.PodcastCount(c.Request.Context(), result[i].ID)
			if err != nil {
				types.SendAppError(c, err)
				return
			}
			result[i].PodcastCount = count
		}

		types.SendSuccess(c, types.CategoriesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Categories:   result,
		})
	}
}

// GetBySlug returns a category and one page of its podcasts
// @Summary      Browse a category
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug" example(true-crime)
// @Param        page query int false "Page number, 1-indexed" default(1)
// @Success      200 {object} types.CategoryFeedResponse "Category with one page of podcasts"
// @Failure      404 {object} types.ErrorResponse "Unknown slug"
// @Router       /api/v1/categories/{slug} [get]
func GetBySlug(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		feed, err := deps.PodcastService.ByCategorySlug(c.Request.Context(), c.Param("slug"), types.QueryPage(c))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		category := types.FromModelCategory(feed.Category)
		if category != nil {
			category.PodcastCount = feed.TotalResults
		}

		types.SendSuccess(c, types.CategoryFeedResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Category:     category,
			Podcasts:     types.FromModelPodcasts(feed.Podcasts),
			TotalResults: feed.TotalResults,
			TotalPages:   feed.TotalPages,
		})
	}
}
