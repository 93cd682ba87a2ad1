package episodes

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/helious23/challenge-backend/internal/models"
	"github.com/helious23/challenge-backend/internal/services/authz"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
)

type Service struct {
	repository EpisodeRepository
	podcasts   PodcastResolver
}

func NewService(repository EpisodeRepository, podcasts PodcastResolver) EpisodeService {
	return &Service{
		repository: repository,
		podcasts:   podcasts,
	}
}

// Create adds a new episode to the caller's podcast.
func (s *Service) Create(ctx context.Context, callerID, podcastID uint, params CreateEpisodeParams) (uint, error) {
	if strings.TrimSpace(params.Title) == "" {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "episode title is required")
	}

	if _, err := s.getOwnedPodcast(ctx, callerID, podcastID, "only the creator may add episodes"); err != nil {
		return 0, err
	}

	episode := &models.Episode{
		PodcastID:   podcastID,
		Title:       params.Title,
		Description: params.Description,
		MediaURL:    params.MediaURL,
	}
	if err := s.repository.Create(ctx, episode); err != nil {
		return 0, apperrors.Database("episode create", err)
	}

	log.Printf("[INFO] Created episode %d on podcast %d: %s", episode.ID, podcastID, episode.Title)
	return episode.ID, nil
}

// Update applies the provided fields to an episode of the caller's podcast.
func (s *Service) Update(ctx context.Context, callerID, podcastID, episodeID uint, params UpdateEpisodeParams) error {
	if _, err := s.getOwnedPodcast(ctx, callerID, podcastID, "only the creator may update episodes"); err != nil {
		return err
	}

	if params.Rating != nil && !models.ValidRating(*params.Rating) {
		return apperrors.Conflict("rating must be between 0 and 5")
	}

	episode, err := s.Get(ctx, podcastID, episodeID)
	if err != nil {
		return err
	}

	if params.Title != nil {
		episode.Title = *params.Title
	}
	if params.Description != nil {
		episode.Description = *params.Description
	}
	if params.MediaURL != nil {
		episode.MediaURL = *params.MediaURL
	}
	if params.Rating != nil {
		episode.Rating = *params.Rating
	}

	if err := s.repository.Update(ctx, episode); err != nil {
		return apperrors.Database("episode update", err)
	}
	return nil
}

// Delete removes an episode of the caller's podcast along with any
// played marks users hold on it.
func (s *Service) Delete(ctx context.Context, callerID, podcastID, episodeID uint) error {
	if _, err := s.getOwnedPodcast(ctx, callerID, podcastID, "only the creator may delete episodes"); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, podcastID, episodeID); err != nil {
		if errors.Is(err, ErrEpisodeNotFound) {
			return s.episodeNotFound(podcastID, episodeID)
		}
		return apperrors.Database("episode delete", err)
	}

	log.Printf("[INFO] Deleted episode %d from podcast %d", episodeID, podcastID)
	return nil
}

// Get returns one episode of a podcast. The parent podcast is checked
// first so a missing show and a missing episode report differently.
func (s *Service) Get(ctx context.Context, podcastID, episodeID uint) (*models.Episode, error) {
	if _, err := s.podcasts.Get(ctx, podcastID); err != nil {
		return nil, err
	}

	episode, err := s.repository.GetByID(ctx, podcastID, episodeID)
	if err != nil {
		if errors.Is(err, ErrEpisodeNotFound) {
			return nil, s.episodeNotFound(podcastID, episodeID)
		}
		return nil, apperrors.Database("episode lookup", err)
	}
	return episode, nil
}

// ListForPodcast returns every episode of a podcast.
func (s *Service) ListForPodcast(ctx context.Context, podcastID uint) ([]models.Episode, error) {
	if _, err := s.podcasts.Get(ctx, podcastID); err != nil {
		return nil, err
	}

	episodes, err := s.repository.ListForPodcast(ctx, podcastID)
	if err != nil {
		return nil, apperrors.Database("episode list", err)
	}
	return episodes, nil
}

// getOwnedPodcast loads the parent podcast and enforces ownership.
// NotFound wins over Forbidden so callers cannot probe for ids.
func (s *Service) getOwnedPodcast(ctx context.Context, callerID, podcastID uint, denied string) (*models.Podcast, error) {
	podcast, err := s.podcasts.Get(ctx, podcastID)
	if err != nil {
		return nil, err
	}
	if !authz.IsOwner(callerID, podcast.CreatorID) {
		return nil, apperrors.Forbidden(denied)
	}
	return podcast, nil
}

func (s *Service) episodeNotFound(podcastID, episodeID uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeNotFound,
		"episode with id %d not found in podcast with id %d", episodeID, podcastID)
}
