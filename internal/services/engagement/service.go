package engagement

import (
	"context"
	"errors"
	"log"

	"github.com/helious23/challenge-backend/internal/models"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
	"github.com/helious23/challenge-backend/pkg/pagination"
)

type Service struct {
	repository EngagementRepository
	pageSize   int
}

func NewService(repository EngagementRepository) EngagementService {
	return &Service{
		repository: repository,
		pageSize:   pagination.DefaultPageSize,
	}
}

// ToggleSubscribe flips the caller's subscription on a podcast and
// returns whether they are subscribed afterwards.
func (s *Service) ToggleSubscribe(ctx context.Context, userID, podcastID uint) (bool, error) {
	subscribed, err := s.repository.ToggleSubscription(ctx, userID, podcastID)
	if err != nil {
		return false, s.podcastEdgeError(err, podcastID, "subscription toggle")
	}
	log.Printf("[INFO] User %d subscription on podcast %d: %t", userID, podcastID, subscribed)
	return subscribed, nil
}

// ToggleLike flips the caller's like on a podcast and returns whether
// they like it afterwards.
func (s *Service) ToggleLike(ctx context.Context, userID, podcastID uint) (bool, error) {
	liked, err := s.repository.ToggleLike(ctx, userID, podcastID)
	if err != nil {
		return false, s.podcastEdgeError(err, podcastID, "like toggle")
	}
	return liked, nil
}

// MarkEpisodePlayed records that the caller played an episode. Repeat
// calls leave a single mark.
func (s *Service) MarkEpisodePlayed(ctx context.Context, userID, episodeID uint) error {
	if err := s.repository.MarkPlayed(ctx, userID, episodeID); err != nil {
		if errors.Is(err, ErrEpisodeNotFound) {
			return apperrors.NotFound("episode", episodeID)
		}
		return apperrors.Database("mark played", err)
	}
	return nil
}

// Subscriptions returns one page of the podcasts the caller subscribes to.
func (s *Service) Subscriptions(ctx context.Context, userID uint, page int) (*PodcastPage, error) {
	p := pagination.New(page, s.pageSize)
	podcasts, total, err := s.repository.SubscribedPodcasts(ctx, userID, p.Number, p.Size)
	if err != nil {
		return nil, apperrors.Database("subscription list", err)
	}
	return s.page(podcasts, total, p), nil
}

// Likes returns one page of the podcasts the caller likes.
func (s *Service) Likes(ctx context.Context, userID uint, page int) (*PodcastPage, error) {
	p := pagination.New(page, s.pageSize)
	podcasts, total, err := s.repository.LikedPodcasts(ctx, userID, p.Number, p.Size)
	if err != nil {
		return nil, apperrors.Database("like list", err)
	}
	return s.page(podcasts, total, p), nil
}

// PlayedEpisodes returns every episode the caller has marked as played.
func (s *Service) PlayedEpisodes(ctx context.Context, userID uint) ([]models.Episode, error) {
	episodes, err := s.repository.PlayedEpisodes(ctx, userID)
	if err != nil {
		return nil, apperrors.Database("played list", err)
	}
	return episodes, nil
}

// CountSubscribers returns how many users subscribe to the podcast.
func (s *Service) CountSubscribers(ctx context.Context, podcastID uint) (int64, error) {
	count, err := s.repository.CountSubscribers(ctx, podcastID)
	if err != nil {
		return 0, s.podcastEdgeError(err, podcastID, "subscriber count")
	}
	return count, nil
}

// CountLikers returns how many users like the podcast.
func (s *Service) CountLikers(ctx context.Context, podcastID uint) (int64, error) {
	count, err := s.repository.CountLikers(ctx, podcastID)
	if err != nil {
		return 0, s.podcastEdgeError(err, podcastID, "liker count")
	}
	return count, nil
}

func (s *Service) podcastEdgeError(err error, podcastID uint, operation string) error {
	if errors.Is(err, ErrPodcastNotFound) {
		return apperrors.NotFound("podcast", podcastID)
	}
	return apperrors.Database(operation, err)
}

func (s *Service) page(podcasts []models.Podcast, total int64, p pagination.Page) *PodcastPage {
	return &PodcastPage{
		Podcasts:     podcasts,
		TotalResults: total,
		TotalPages:   p.TotalPages(total),
	}
}
