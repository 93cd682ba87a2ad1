package engagement

import (
	"context"
	"errors"
	"fmt"

	"github.com/helious23/challenge-backend/internal/models"
	"gorm.io/gorm"
)

// ErrPodcastNotFound is returned when an edge targets a missing podcast.
var ErrPodcastNotFound = errors.New("podcast not found")

// ErrEpisodeNotFound is returned when a played mark targets a missing episode.
var ErrEpisodeNotFound = errors.New("episode not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) EngagementRepository {
	return &Repository{db: db}
}

// ToggleSubscription flips the caller's subscription edge on one podcast
// and reports whether the edge exists afterwards. The existence check and
// the flip share a transaction.
func (r *Repository) ToggleSubscription(ctx context.Context, userID, podcastID uint) (bool, error) {
	var subscribed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := podcastExists(tx, podcastID); err != nil {
			return err
		}

		result := tx.Unscoped().
			Where("user_id = ? AND podcast_id = ?", userID, podcastID).
			Delete(&models.Subscription{})
		if result.Error != nil {
			return fmt.Errorf("removing subscription: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			subscribed = false
			return nil
		}

		if err := tx.Create(&models.Subscription{UserID: userID, PodcastID: podcastID}).Error; err != nil {
			// A concurrent toggle already created the edge; the caller
			// still ends up subscribed.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				subscribed = true
				return nil
			}
			return fmt.Errorf("creating subscription: %w", err)
		}
		subscribed = true
		return nil
	})
	return subscribed, err
}

// ToggleLike flips the caller's like edge on one podcast and reports
// whether the edge exists afterwards.
func (r *Repository) ToggleLike(ctx context.Context, userID, podcastID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := podcastExists(tx, podcastID); err != nil {
			return err
		}

		result := tx.Unscoped().
			Where("user_id = ? AND podcast_id = ?", userID, podcastID).
			Delete(&models.Like{})
		if result.Error != nil {
			return fmt.Errorf("removing like: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			liked = false
			return nil
		}

		if err := tx.Create(&models.Like{UserID: userID, PodcastID: podcastID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				liked = true
				return nil
			}
			return fmt.Errorf("creating like: %w", err)
		}
		liked = true
		return nil
	})
	return liked, err
}

// MarkPlayed records that the user played an episode. Marking the same
// episode again is a no-op.
func (r *Repository) MarkPlayed(ctx context.Context, userID, episodeID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Episode{}, episodeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEpisodeNotFound
			}
			return fmt.Errorf("checking episode: %w", err)
		}

		if err := tx.Create(&models.PlayedEpisode{UserID: userID, EpisodeID: episodeID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return fmt.Errorf("marking episode played: %w", err)
		}
		return nil
	})
}

// SubscribedPodcasts returns one page of the podcasts the user
// subscribes to, newest subscription first
func (r *Repository) SubscribedPodcasts(ctx context.Context, userID uint, page, limit int) ([]models.Podcast, int64, error) {
	return r.podcastsThroughEdge(ctx, "subscriptions", userID, page, limit)
}

// LikedPodcasts returns one page of the podcasts the user likes,
// newest like first
func (r *Repository) LikedPodcasts(ctx context.Context, userID uint, page, limit int) ([]models.Podcast, int64, error) {
	return r.podcastsThroughEdge(ctx, "likes", userID, page, limit)
}

func (r *Repository) podcastsThroughEdge(ctx context.Context, table string, userID uint, page, limit int) ([]models.Podcast, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Podcast{}).
		Joins(fmt.Sprintf("JOIN %s ON %s.podcast_id = podcasts.id", table, table)).
		Where(fmt.Sprintf("%s.user_id = ?", table), userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting %s: %w", table, err)
	}

	var result []models.Podcast
	err := query.
		Order(fmt.Sprintf("%s.created_at DESC", table)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", table, err)
	}
	return result, total, nil
}

// PlayedEpisodes returns every episode the user has marked as played,
// most recent mark first
func (r *Repository) PlayedEpisodes(ctx context.Context, userID uint) ([]models.Episode, error) {
	var episodes []models.Episode
	err := r.db.WithContext(ctx).Model(&models.Episode{}).
		Joins("JOIN played_episodes ON played_episodes.episode_id = episodes.id").
		Where("played_episodes.user_id = ?", userID).
		Order("played_episodes.created_at DESC").
		Find(&episodes).Error
	if err != nil {
		return nil, fmt.Errorf("listing played episodes: %w", err)
	}
	return episodes, nil
}

// CountSubscribers returns how many users subscribe to the podcast
func (r *Repository) CountSubscribers(ctx context.Context, podcastID uint) (int64, error) {
	return r.countEdge(ctx, &models.Subscription{}, podcastID)
}

// CountLikers returns how many users like the podcast
func (r *Repository) CountLikers(ctx context.Context, podcastID uint) (int64, error) {
	return r.countEdge(ctx, &models.Like{}, podcastID)
}

func (r *Repository) countEdge(ctx context.Context, model any, podcastID uint) (int64, error) {
	if err := podcastExists(r.db.WithContext(ctx), podcastID); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(model).
		Where("podcast_id = ?", podcastID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting edges: %w", err)
	}
	return count, nil
}

func podcastExists(tx *gorm.DB, podcastID uint) error {
	if err := tx.First(&models.Podcast{}, podcastID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPodcastNotFound
		}
		return fmt.Errorf("checking podcast: %w", err)
	}
	return nil
}
