package categories

import (
	"context"

	"github.com/helious23/challenge-backend/internal/models"
)

// CategoryRepository defines the data access interface for categories
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	// Delete removes the category row and nulls category_id on its
	// podcasts inside one transaction. The podcasts themselves survive.
	Delete(ctx context.Context, id uint) error
	CountPodcasts(ctx context.Context, categoryID uint) (int64, error)
}

// CategoryService defines the business logic interface for category operations
type CategoryService interface {
	// GetOrCreate resolves a category by the slug derived from name,
	// creating it on first use. Concurrent first-use races resolve to the
	// single row the unique slug index let through.
	GetOrCreate(ctx context.Context, name, imageURL string) (*models.Category, error)
	All(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
	PodcastCount(ctx context.Context, categoryID uint) (int64, error)
}
