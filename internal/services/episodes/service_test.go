package episodes

import (
	"context"
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
	service  EpisodeService
	owner    *models.User
	stranger *models.User
	podcast  uint
}

func setupFixture(t *testing.T) *fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	owner := &models.User{Email: "owner@example.com", PasswordHash: "x", Role: models.RoleHost}
	require.NoError(t, db.Create(owner).Error)
	stranger := &models.User{Email: "other@example.com", PasswordHash: "x", Role: models.RoleHost}
	require.NoError(t, db.Create(stranger).Error)

	podcast := &models.Podcast{Title: "Show", CreatorID: owner.ID}
	require.NoError(t, db.Create(podcast).Error)

	podcastService := podcasts.NewService(
		podcasts.NewRepository(db),
		categories.NewService(categories.NewRepository(db)),
	)

	return &fixture{
		db:       db,
		service:  NewService(NewRepository(db), podcastService),
		owner:    owner,
		stranger: stranger,
		podcast:  podcast.ID,
	}
}

func TestService_CreateRequiresOwnership(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, f.stranger.ID, f.podcast, CreateEpisodeParams{Title: "Pilot"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeForbidden, apperrors.GetCode(err))

	var count int64
	require.NoError(t, f.db.Model(&models.Episode{}).Count(&count).Error)
	assert.Zero(t, count)

	id, err := f.service.Create(ctx, f.owner.ID, f.podcast, CreateEpisodeParams{
		Title:    "Pilot",
		MediaURL: "https://example.com/pilot.mp3",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	// Missing parent podcast reports NotFound, not Forbidden
	_, err = f.service.Create(ctx, f.owner.ID, 9999, CreateEpisodeParams{Title: "Lost"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}

func TestService_CreateRejectsEmptyTitle(t *testing.T) {
	f := setupFixture(t)

	_, err := f.service.Create(context.Background(), f.owner.ID, f.podcast, CreateEpisodeParams{Title: "   "})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetCode(err))
}

func TestService_GetScopedToPodcast(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	id, err := f.service.Create(ctx, f.owner.ID, f.podcast, CreateEpisodeParams{Title: "Pilot"})
	require.NoError(t, err)

	other := &models.Podcast{Title: "Other Show", CreatorID: f.owner.ID}
	require.NoError(t, f.db.Create(other).Error)

	episode, err := f.service.Get(ctx, f.podcast, id)
	require.NoError(t, err)
	assert.Equal(t, "Pilot", episode.Title)

	// The same episode id is invisible through another podcast
	_, err = f.service.Get(ctx, other.ID, id)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "not found in podcast")

	_, err = f.service.Get(ctx, 9999, id)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}

func TestService_UpdateValidatesRating(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	id, err := f.service.Create(ctx, f.owner.ID, f.podcast, CreateEpisodeParams{Title: "Pilot"})
	require.NoError(t, err)

	bad := -1
	err = f.service.Update(ctx, f.owner.ID, f.podcast, id, UpdateEpisodeParams{Rating: &bad})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetCode(err))

	title := "Pilot (remastered)"
	rating := 5
	require.NoError(t, f.service.Update(ctx, f.owner.ID, f.podcast, id, UpdateEpisodeParams{
		Title:  &title,
		Rating: &rating,
	}))

	episode, err := f.service.Get(ctx, f.podcast, id)
	require.NoError(t, err)
	assert.Equal(t, "Pilot (remastered)", episode.Title)
	assert.Equal(t, 5, episode.Rating)

	err = f.service.Update(ctx, f.stranger.ID, f.podcast, id, UpdateEpisodeParams{Title: &title})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeForbidden, apperrors.GetCode(err))
}

func TestService_DeleteRemovesPlayedMarks(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	id, err := f.service.Create(ctx, f.owner.ID, f.podcast, CreateEpisodeParams{Title: "Pilot"})
	require.NoError(t, err)
	require.NoError(t, f.db.Create(&models.PlayedEpisode{UserID: f.stranger.ID, EpisodeID: id}).Error)

	err = f.service.Delete(ctx, f.stranger.ID, f.podcast, id)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeForbidden, apperrors.GetCode(err))

	require.NoError(t, f.service.Delete(ctx, f.owner.ID, f.podcast, id))

	var marks int64
	require.NoError(t, f.db.Unscoped().Model(&models.PlayedEpisode{}).Where("episode_id = ?", id).Count(&marks).Error)
	assert.Zero(t, marks)

	err = f.service.Delete(ctx, f.owner.ID, f.podcast, id)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}

func TestService_ListForPodcast(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := f.service.Create(ctx, f.owner.ID, f.podcast, CreateEpisodeParams{Title: title})
		require.NoError(t, err)
	}

	episodes, err := f.service.ListForPodcast(ctx, f.podcast)
	require.NoError(t, err)
	require.Len(t, episodes, 3)
	assert.Equal(t, "One", episodes[0].Title)

	_, err = f.service.ListForPodcast(ctx, 9999)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}
