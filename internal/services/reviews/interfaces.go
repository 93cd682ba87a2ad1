package reviews

import (
	"context"

	"github.com/helious23/challenge-backend/internal/models"
)

// ReviewRepository defines the storage operations for reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	ListForPodcast(ctx context.Context, podcastID uint, page, limit int) ([]models.Review, int64, error)
	Delete(ctx context.Context, id uint) error
}

// PodcastResolver is the slice of the podcast service reviews need to
// check that the reviewed podcast exists.
type PodcastResolver interface {
	Get(ctx context.Context, id uint) (*models.Podcast, error)
}

// CreateReviewParams carries the fields for a new review.
type CreateReviewParams struct {
	Title string
	Text  string
}

// ReviewPage is one page of reviews with pagination totals.
type ReviewPage struct {
	Reviews      []models.Review
	TotalResults int64
	TotalPages   int
}

// ReviewService defines the business operations for reviews
type ReviewService interface {
	Create(ctx context.Context, reviewerID, podcastID uint, params CreateReviewParams) (uint, error)
	Delete(ctx context.Context, callerID, reviewID uint) error
	ListForPodcast(ctx context.Context, podcastID uint, page int) (*ReviewPage, error)
}
