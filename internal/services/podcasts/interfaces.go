package podcasts

import (
	"context"

	"github.com/helious23/challenge-backend/internal/models"
)

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	// Create/Update
	Create(ctx context.Context, podcast *models.Podcast) error
	Update(ctx context.Context, podcast *models.Podcast) error

	// Read
	GetByID(ctx context.Context, id uint) (*models.Podcast, error)
	GetWithRelations(ctx context.Context, id uint) (*models.Podcast, error)

	// List
	List(ctx context.Context, page, limit int) ([]models.Podcast, int64, error)
	ListByCreator(ctx context.Context, creatorID uint, page, limit int) ([]models.Podcast, int64, error)
	ListByCategory(ctx context.Context, categoryID uint, page, limit int) ([]models.Podcast, int64, error)
	ListPromoted(ctx context.Context) ([]models.Podcast, error)
	Search(ctx context.Context, titleQuery string, page, limit int) ([]models.Podcast, int64, error)

	// Counts over owned collections
	CountEpisodes(ctx context.Context, podcastID uint) (int64, error)
	CountReviews(ctx context.Context, podcastID uint) (int64, error)

	// DeleteCascade removes the podcast and everything hanging off it in
	// one transaction: subscription and like edges, played-episode edges
	// of its episodes, the episodes, the reviews, then the podcast row.
	// Any failure rolls the whole cascade back.
	DeleteCascade(ctx context.Context, podcastID uint) error
}

// CategoryResolver is the slice of the category service podcasts need.
type CategoryResolver interface {
	GetOrCreate(ctx context.Context, name, imageURL string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// CreatePodcastParams carries the fields for a new podcast.
type CreatePodcastParams struct {
	Title         string
	Description   string
	CoverImage    string
	CategoryName  string
	CategoryImage string
}

// UpdatePodcastParams carries the optional fields of a podcast update.
// Nil means "leave unchanged".
type UpdatePodcastParams struct {
	Title        *string
	Description  *string
	CoverImage   *string
	Rating       *int
	CategoryName *string
}

// PodcastPage is one page of podcasts plus totals.
type PodcastPage struct {
	Podcasts     []models.Podcast
	TotalResults int64
	TotalPages   int
}

// CategoryFeed is a category together with one page of its podcasts.
type CategoryFeed struct {
	Category *models.Category
	PodcastPage
}

// PodcastService defines the business logic interface for podcast operations
type PodcastService interface {
	Create(ctx context.Context, creatorID uint, params CreatePodcastParams) (uint, error)
	Update(ctx context.Context, callerID, id uint, params UpdatePodcastParams) error
	Delete(ctx context.Context, callerID, id uint) error
	Promote(ctx context.Context, callerID, id uint, promotionImage string) error

	Get(ctx context.Context, id uint) (*models.Podcast, error)
	List(ctx context.Context, page int) (*PodcastPage, error)
	Search(ctx context.Context, titleQuery string, page int) (*PodcastPage, error)
	Promoted(ctx context.Context) ([]models.Podcast, error)
	My(ctx context.Context, creatorID uint, page int) (*PodcastPage, error)
	MyOne(ctx context.Context, creatorID, id uint) (*models.Podcast, error)
	ByCategorySlug(ctx context.Context, slug string, page int) (*CategoryFeed, error)

	CountEpisodes(ctx context.Context, podcastID uint) (int64, error)
	CountReviews(ctx context.Context, podcastID uint) (int64, error)
}
