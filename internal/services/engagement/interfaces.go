package engagement

import (
	"context"

	"github.com/helious23/challenge-backend/internal/models"
)

// EngagementRepository defines the storage operations for the edges a
// user holds against the catalog: subscriptions, likes and played
// episode marks. Toggles run inside a transaction together with the
// existence check on their target.
type EngagementRepository interface {
	ToggleSubscription(ctx context.Context, userID, podcastID uint) (bool, error)
	ToggleLike(ctx context.Context, userID, podcastID uint) (bool, error)
	MarkPlayed(ctx context.Context, userID, episodeID uint) error

	SubscribedPodcasts(ctx context.Context, userID uint, page, limit int) ([]models.Podcast, int64, error)
	LikedPodcasts(ctx context.Context, userID uint, page, limit int) ([]models.Podcast, int64, error)
	PlayedEpisodes(ctx context.Context, userID uint) ([]models.Episode, error)

	CountSubscribers(ctx context.Context, podcastID uint) (int64, error)
	CountLikers(ctx context.Context, podcastID uint) (int64, error)
}

// PodcastPage is one page of podcasts reached through an edge, with
// pagination totals.
type PodcastPage struct {
	Podcasts     []models.Podcast
	TotalResults int64
	TotalPages   int
}

// EngagementService defines the business operations for user edges.
// Toggle results report the state after the call.
type EngagementService interface {
	ToggleSubscribe(ctx context.Context, userID, podcastID uint) (bool, error)
	ToggleLike(ctx context.Context, userID, podcastID uint) (bool, error)
	MarkEpisodePlayed(ctx context.Context, userID, episodeID uint) error

	Subscriptions(ctx context.Context, userID uint, page int) (*PodcastPage, error)
	Likes(ctx context.Context, userID uint, page int) (*PodcastPage, error)
	PlayedEpisodes(ctx context.Context, userID uint) ([]models.Episode, error)

	CountSubscribers(ctx context.Context, podcastID uint) (int64, error)
	CountLikers(ctx context.Context, podcastID uint) (int64, error)
}
