package podcasts

import (
	"context"
	"errors"
	"fmt"

	"github.com/helious23/challenge-backend/internal/models"
	"gorm.io/gorm"
)

// ErrPodcastNotFound is returned when a podcast lookup misses.
var ErrPodcastNotFound = errors.New("podcast not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PodcastRepository {
	return &Repository{db: db}
}

// Create inserts a new podcast
func (r *Repository) Create(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

// Update persists changes to an existing podcast
func (r *Repository) Update(ctx context.Context, podcast *models.Podcast) error {
	result := r.db.WithContext(ctx).Save(podcast)
	if result.Error != nil {
		return fmt.Errorf("updating podcast: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPodcastNotFound
	}
	return nil
}

// GetByID retrieves a podcast by its database ID
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPodcastNotFound
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// GetWithRelations retrieves a podcast with episodes, creator, reviews and
// category eagerly attached
func (r *Repository) GetWithRelations(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).
		Preload("Episodes").
		Preload("Creator").
		Preload("Reviews").
		Preload("Category").
		First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPodcastNotFound
		}
		return nil, fmt.Errorf("getting podcast with relations: %w", err)
	}
	return &podcast, nil
}

// List returns one page of podcasts plus the total count
func (r *Repository) List(ctx context.Context, page, limit int) ([]models.Podcast, int64, error) {
	return r.listWhere(ctx, page, limit, nil)
}

// ListByCreator returns one page of a creator's podcasts
func (r *Repository) ListByCreator(ctx context.Context, creatorID uint, page, limit int) ([]models.Podcast, int64, error) {
	return r.listWhere(ctx, page, limit, map[string]any{"creator_id": creatorID})
}

// ListByCategory returns one page of a category's podcasts
func (r *Repository) ListByCategory(ctx context.Context, categoryID uint, page, limit int) ([]models.Podcast, int64, error) {
	return r.listWhere(ctx, page, limit, map[string]any{"category_id": categoryID})
}

func (r *Repository) listWhere(ctx context.Context, page, limit int, filter map[string]any) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Podcast{})
	if filter != nil {
		query = query.Where(filter)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting podcasts: %w", err)
	}

	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("listing podcasts: %w", err)
	}

	return podcasts, total, nil
}

// ListPromoted returns every promoted podcast
func (r *Repository) ListPromoted(ctx context.Context) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	if err := r.db.WithContext(ctx).
		Where("is_promoted = ?", true).
		Order("updated_at DESC").
		Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("listing promoted podcasts: %w", err)
	}
	return podcasts, nil
}

// Search returns one page of podcasts whose title contains the query,
// case-insensitively
func (r *Repository) Search(ctx context.Context, titleQuery string, page, limit int) ([]models.Podcast, int64, error) {
	var podcasts []models.Podcast
	var total int64

	pattern := "%" + titleQuery + "%"
	query := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("LOWER(title) LIKE LOWER(?)", pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting search results: %w", err)
	}

	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&podcasts).Error; err != nil {
		return nil, 0, fmt.Errorf("searching podcasts: %w", err)
	}

	return podcasts, total, nil
}

// CountEpisodes returns the number of episodes the podcast owns
func (r *Repository) CountEpisodes(ctx context.Context, podcastID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("podcast_id = ?", podcastID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting episodes: %w", err)
	}
	return count, nil
}

// CountReviews returns the number of reviews the podcast owns
func (r *Repository) CountReviews(ctx context.Context, podcastID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("podcast_id = ?", podcastID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting reviews: %w", err)
	}
	return count, nil
}

// DeleteCascade removes the podcast and all dependent rows atomically.
// The edge tables are reconciled first so no user keeps a subscription or
// like pointing at a podcast that is about to disappear; a failure at any
// step rolls everything back.
func (r *Repository) DeleteCascade(ctx context.Context, podcastID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("podcast_id = ?", podcastID).
			Delete(&models.Subscription{}).Error; err != nil {
			return fmt.Errorf("removing subscription edges: %w", err)
		}

		if err := tx.Unscoped().
			Where("podcast_id = ?", podcastID).
			Delete(&models.Like{}).Error; err != nil {
			return fmt.Errorf("removing like edges: %w", err)
		}

		if err := tx.Unscoped().
			Where("episode_id IN (?)",
				tx.Model(&models.Episode{}).Select("id").Where("podcast_id = ?", podcastID)).
			Delete(&models.PlayedEpisode{}).Error; err != nil {
			return fmt.Errorf("removing played-episode edges: %w", err)
		}

		if err := tx.Unscoped().
			Where("podcast_id = ?", podcastID).
			Delete(&models.Episode{}).Error; err != nil {
			return fmt.Errorf("removing episodes: %w", err)
		}

		if err := tx.Unscoped().
			Where("podcast_id = ?", podcastID).
			Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("removing reviews: %w", err)
		}

		result := tx.Unscoped().Delete(&models.Podcast{}, podcastID)
		if result.Error != nil {
			return fmt.Errorf("removing podcast: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrPodcastNotFound
		}
		return nil
	})
}
