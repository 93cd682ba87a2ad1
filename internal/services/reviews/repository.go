package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/helious23/challenge-backend/internal/models"
	"gorm.io/gorm"
)

// ErrReviewNotFound is returned when a review lookup misses.
var ErrReviewNotFound = errors.New("review not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReviewRepository {
	return &Repository{db: db}
}

// Create inserts a new review
func (r *Repository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("creating review: %w", err)
	}
	return nil
}

// GetByID retrieves a review by its database ID
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("getting review: %w", err)
	}
	return &review, nil
}

// ListForPodcast retrieves one page of a podcast's reviews, newest first
func (r *Repository) ListForPodcast(ctx context.Context, podcastID uint, page, limit int) ([]models.Review, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Review{}).Where("podcast_id = ?", podcastID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting reviews: %w", err)
	}

	var reviews []models.Review
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing reviews: %w", err)
	}
	return reviews, total, nil
}

// Delete hard-removes a review
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
