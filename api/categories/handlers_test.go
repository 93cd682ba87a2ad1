package categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/models"
	catsvc "github.com/helious23/challenge-backend/internal/services/categories"
	"github.com/helious23/challenge-backend/internal/services/podcasts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	categoryService := catsvc.NewService(catsvc.NewRepository(db))
	deps := &types.Dependencies{
		CategoryService: categoryService,
		PodcastService:  podcasts.NewService(podcasts.NewRepository(db), categoryService),
	}

	engine := gin.New()
	v1 := engine.Group("/api/v1")
	RegisterRoutes(v1, deps)
	return engine, db
}

func TestGetAllIncludesPodcastCounts(t *testing.T) {
	engine, db := setupEnv(t)

	crime := &models.Category{Name: "True Crime", Slug: "true-crime"}
	require.NoError(t, db.Create(crime).Error)
	tech := &models.Category{Name: "Tech", Slug: "tech"}
	require.NoError(t, db.Create(tech).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Podcast{
			Title: "Crime Show", CreatorID: 1, CategoryID: &crime.ID,
		}).Error)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response types.CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Categories, 2)

	counts := map[string]int64{}
	for _, category := range response.Categories {
		counts[category.Slug] = category.PodcastCount
	}
	assert.Equal(t, int64(3), counts["true-crime"])
	assert.Equal(t, int64(0), counts["tech"])
}

func TestGetBySlugCarriesPodcastCount(t *testing.T) {
	engine, db := setupEnv(t)

	crime := &models.Category{Name: "True Crime", Slug: "true-crime"}
	require.NoError(t, db.Create(crime).Error)
	require.NoError(t, db.Create(&models.Podcast{
		Title: "Crime Show", CreatorID: 1, CategoryID: &crime.ID,
	}).Error)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories/true-crime", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response types.CategoryFeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Category)
	assert.Equal(t, int64(1), response.Category.PodcastCount)
	assert.Len(t, response.Podcasts, 1)
}
