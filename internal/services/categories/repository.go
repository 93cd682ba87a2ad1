package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/helious23/challenge-backend/internal/models"
	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category lookup misses.
var ErrCategoryNotFound = errors.New("category not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CategoryRepository {
	return &Repository{db: db}
}

// Create inserts a new category. A slug/name collision surfaces as
// gorm.ErrDuplicatedKey for the service to resolve.
func (r *Repository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by its database ID
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return &category, nil
}

// GetBySlug retrieves a category by its slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("getting category by slug: %w", err)
	}
	return &category, nil
}

// List returns all categories ordered by name
func (r *Repository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// Delete removes the category and detaches its podcasts in one transaction
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Delete(&models.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}

		if err := tx.Model(&models.Podcast{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detaching podcasts: %w", err)
		}
		return nil
	})
}

// CountPodcasts returns the number of podcasts filed under the category
func (r *Repository) CountPodcasts(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting podcasts in category: %w", err)
	}
	return count, nil
}
