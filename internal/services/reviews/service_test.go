package reviews

import (
	"context"
	"fmt"
	"testing"

	"github.com/helious23/challenge-backend/internal/models"
	"github.com/helious23/challenge-backend/internal/services/categories"
	"github.com/helious23/challenge-backend/internal/services/podcasts"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	service  ReviewService
	host     *models.User
	listener *models.User
	podcast  uint
}

func setupFixture(t *testing.T) *fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	host := &models.User{Email: "host@example.com", PasswordHash: "x", Role: models.RoleHost}
	require.NoError(t, db.Create(host).Error)
	listener := &models.User{Email: "fan@example.com", PasswordHash: "x", Role: models.RoleListener}
	require.NoError(t, db.Create(listener).Error)

	podcast := &models.Podcast{Title: "Show", CreatorID: host.ID}
	require.NoError(t, db.Create(podcast).Error)

	podcastService := podcasts.NewService(
		podcasts.NewRepository(db),
		categories.NewService(categories.NewRepository(db)),
	)

	return &fixture{
		db:       db,
		service:  NewService(NewRepository(db), podcastService),
		host:     host,
		listener: listener,
		podcast:  podcast.ID,
	}
}

func TestService_CreateRequiresExistingPodcast(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, f.listener.ID, 9999, CreateReviewParams{Title: "Hi", Text: "Great"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))

	var count int64
	require.NoError(t, f.db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count, "nothing may be written for a missing podcast")

	id, err := f.service.Create(ctx, f.listener.ID, f.podcast, CreateReviewParams{Title: "Hi", Text: "Great"})
	require.NoError(t, err)
	require.NotZero(t, id)

	var review models.Review
	require.NoError(t, f.db.First(&review, id).Error)
	require.NotNil(t, review.ReviewerID)
	assert.Equal(t, f.listener.ID, *review.ReviewerID)
	assert.Equal(t, f.podcast, review.PodcastID)
}

func TestService_CreateRejectsEmptyText(t *testing.T) {
	f := setupFixture(t)

	_, err := f.service.Create(context.Background(), f.listener.ID, f.podcast, CreateReviewParams{Title: "Hi"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetCode(err))
}

func TestService_DeleteOnlyByAuthor(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	id, err := f.service.Create(ctx, f.listener.ID, f.podcast, CreateReviewParams{Text: "Great"})
	require.NoError(t, err)

	// Even the podcast creator cannot remove someone else's review
	err = f.service.Delete(ctx, f.host.ID, id)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeForbidden, apperrors.GetCode(err))

	var count int64
	require.NoError(t, f.db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, f.service.Delete(ctx, f.listener.ID, id))

	require.NoError(t, f.db.Unscoped().Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)

	err = f.service.Delete(ctx, f.listener.ID, id)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}

func TestService_ListForPodcastPaginates(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := f.service.Create(ctx, f.listener.ID, f.podcast, CreateReviewParams{
			Text: fmt.Sprintf("review %02d", i),
		})
		require.NoError(t, err)
	}

	page1, err := f.service.ListForPodcast(ctx, f.podcast, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Reviews, 12)
	assert.Equal(t, int64(15), page1.TotalResults)
	assert.Equal(t, 2, page1.TotalPages)

	page2, err := f.service.ListForPodcast(ctx, f.podcast, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Reviews, 3)

	_, err = f.service.ListForPodcast(ctx, 9999, 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}
