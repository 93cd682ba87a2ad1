package episodes

import (
	"context"
	"errors"
	"fmt"

	"github.com/helious23/challenge-backend/internal/models"
	"gorm.io/gorm"
)

// ErrEpisodeNotFound is returned when an episode lookup misses.
var ErrEpisodeNotFound = errors.New("episode not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) EpisodeRepository {
	return &Repository{db: db}
}

// Create inserts a new episode
func (r *Repository) Create(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

// Update persists changes to an existing episode
func (r *Repository) Update(ctx context.Context, episode *models.Episode) error {
	result := r.db.WithContext(ctx).Save(episode)
	if result.Error != nil {
		return fmt.Errorf("updating episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEpisodeNotFound
	}
	return nil
}

// GetByID retrieves an episode scoped to its parent podcast
func (r *Repository) GetByID(ctx context.Context, podcastID, episodeID uint) (*models.Episode, error) {
	var episode models.Episode
	err := r.db.WithContext(ctx).
		Where("podcast_id = ?", podcastID).
		First(&episode, episodeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEpisodeNotFound
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

// ListForPodcast retrieves every episode of one podcast in insertion order
func (r *Repository) ListForPodcast(ctx context.Context, podcastID uint) ([]models.Episode, error) {
	var episodes []models.Episode
	err := r.db.WithContext(ctx).
		Where("podcast_id = ?", podcastID).
		Order("id").
		Find(&episodes).Error
	if err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}
	return episodes, nil
}

// Delete removes an episode together with every played mark that
// references it, in one transaction
func (r *Repository) Delete(ctx context.Context, podcastID, episodeID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("episode_id = ?", episodeID).
			Delete(&models.PlayedEpisode{}).Error; err != nil {
			return fmt.Errorf("deleting played marks: %w", err)
		}

		result := tx.Unscoped().
			Where("podcast_id = ?", podcastID).
			Delete(&models.Episode{}, episodeID)
		if result.Error != nil {
			return fmt.Errorf("deleting episode: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrEpisodeNotFound
		}
		return nil
	})
}
