package episodes

import (
	"context"

	"github.com/helious23/challenge-backend/internal/models"
)

// EpisodeRepository defines the storage operations for episodes. Every
// lookup is scoped to a parent podcast so an episode id from another
// show can never be addressed through the wrong route.
type EpisodeRepository interface {
	Create(ctx context.Context, episode *models.Episode) error
	Update(ctx context.Context, episode *models.Episode) error
	GetByID(ctx context.Context, podcastID, episodeID uint) (*models.Episode, error)
	ListForPodcast(ctx context.Context, podcastID uint) ([]models.Episode, error)
	Delete(ctx context.Context, podcastID, episodeID uint) error
}

// PodcastResolver is the slice of the podcast service episodes need to
// check that a parent podcast exists and who owns it.
type PodcastResolver interface {
	Get(ctx context.Context, id uint) (*models.Podcast, error)
}

// CreateEpisodeParams carries the fields for a new episode.
type CreateEpisodeParams struct {
	Title       string
	Description string
	MediaURL    string
}

// UpdateEpisodeParams carries optional fields for an episode update.
// Nil fields are left untouched.
type UpdateEpisodeParams struct {
	Title       *string
	Description *string
	MediaURL    *string
	Rating      *int
}

// EpisodeService defines the business operations for episodes
type EpisodeService interface {
	Create(ctx context.Context, callerID, podcastID uint, params CreateEpisodeParams) (uint, error)
	Update(ctx context.Context, callerID, podcastID, episodeID uint, params UpdateEpisodeParams) error
	Delete(ctx context.Context, callerID, podcastID, episodeID uint) error
	Get(ctx context.Context, podcastID, episodeID uint) (*models.Episode, error)
	ListForPodcast(ctx context.Context, podcastID uint) ([]models.Episode, error)
}
