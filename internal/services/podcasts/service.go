package podcasts

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/helious23/challenge-backend/internal/models"
	"github.com/helious23/challenge-backend/internal/services/authz"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
	"github.com/helious23/challenge-backend/pkg/pagination"
)

type Service struct {
	repository PodcastRepository
	categories CategoryResolver
	pageSize   int
}

// Option configures the service.
type Option func(*Service)

// WithPageSize overrides the default page size for list operations.
func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

func NewService(repository PodcastRepository, categories CategoryResolver, opts ...Option) PodcastService {
	s := &Service{
		repository: repository,
		categories: categories,
		pageSize:   pagination.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create persists a new podcast owned by the caller. The category is
// resolved (or created) from its name first.
func (s *Service) Create(ctx context.Context, creatorID uint, params CreatePodcastParams) (uint, error) {
	if strings.TrimSpace(params.Title) == "" {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "podcast title is required")
	}

	category, err := s.categories.GetOrCreate(ctx, params.CategoryName, params.CategoryImage)
	if err != nil {
		return 0, err
	}

	podcast := &models.Podcast{
		Title:       params.Title,
		Description: params.Description,
		CoverImage:  params.CoverImage,
		CreatorID:   creatorID,
		CategoryID:  &category.ID,
	}
	if err := s.repository.Create(ctx, podcast); err != nil {
		return 0, apperrors.Database("podcast create", err)
	}

	log.Printf("[INFO] Created podcast %d: %s", podcast.ID, podcast.Title)
	return podcast.ID, nil
}

// Update applies the provided fields to the caller's podcast. The creator
// reference is never touched.
func (s *Service) Update(ctx context.Context, callerID, id uint, params UpdatePodcastParams) error {
	podcast, err := s.getOwned(ctx, callerID, id, "only the creator may update this podcast")
	if err != nil {
		return err
	}

	if params.Rating != nil && !models.ValidRating(*params.Rating) {
		return apperrors.Conflict("rating must be between 0 and 5")
	}

	if params.Title != nil {
		podcast.Title = *params.Title
	}
	if params.Description != nil {
		podcast.Description = *params.Description
	}
	if params.CoverImage != nil {
		podcast.CoverImage = *params.CoverImage
	}
	if params.Rating != nil {
		podcast.Rating = *params.Rating
	}
	if params.CategoryName != nil {
		category, err := s.categories.GetOrCreate(ctx, *params.CategoryName, "")
		if err != nil {
			return err
		}
		podcast.CategoryID = &category.ID
	}

	if err := s.repository.Update(ctx, podcast); err != nil {
		return apperrors.Database("podcast update", err)
	}
	return nil
}

// Delete removes the caller's podcast and cascades over its episodes,
// reviews, and every user's subscription/like edges in one transaction.
func (s *Service) Delete(ctx context.Context, callerID, id uint) error {
	if _, err := s.getOwned(ctx, callerID, id, "only the creator may delete this podcast"); err != nil {
		return err
	}

	if err := s.repository.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, ErrPodcastNotFound) {
			return apperrors.NotFound("podcast", id)
		}
		return apperrors.Database("podcast delete", err)
	}

	log.Printf("[INFO] Deleted podcast %d", id)
	return nil
}

// Promote marks the caller's podcast as promoted. This is a one-way
// action: there is no un-promote.
func (s *Service) Promote(ctx context.Context, callerID, id uint, promotionImage string) error {
	podcast, err := s.getOwned(ctx, callerID, id, "only the creator may promote this podcast")
	if err != nil {
		return err
	}

	podcast.IsPromoted = true
	if promotionImage != "" {
		podcast.PromotionImage = promotionImage
	}

	if err := s.repository.Update(ctx, podcast); err != nil {
		return apperrors.Database("podcast promote", err)
	}
	return nil
}

// Get returns the podcast with episodes, creator and reviews attached.
func (s *Service) Get(ctx context.Context, id uint) (*models.Podcast, error) {
	podcast, err := s.repository.GetWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPodcastNotFound) {
			return nil, apperrors.NotFound("podcast", id)
		}
		return nil, apperrors.Database("podcast lookup", err)
	}
	return podcast, nil
}

// List returns one page of the whole catalog.
func (s *Service) List(ctx context.Context, page int) (*PodcastPage, error) {
	p := pagination.New(page, s.pageSize)
	podcasts, total, err := s.repository.List(ctx, p.Number, p.Size)
	if err != nil {
		return nil, apperrors.Database("podcast list", err)
	}
	return s.page(podcasts, total, p), nil
}

// Search returns one page of podcasts matching the title substring.
func (s *Service) Search(ctx context.Context, titleQuery string, page int) (*PodcastPage, error) {
	p := pagination.New(page, s.pageSize)
	podcasts, total, err := s.repository.Search(ctx, titleQuery, p.Number, p.Size)
	if err != nil {
		return nil, apperrors.Database("podcast search", err)
	}
	return s.page(podcasts, total, p), nil
}

// Promoted returns every promoted podcast.
func (s *Service) Promoted(ctx context.Context) ([]models.Podcast, error) {
	podcasts, err := s.repository.ListPromoted(ctx)
	if err != nil {
		return nil, apperrors.Database("promoted list", err)
	}
	return podcasts, nil
}

// My returns one page of the caller's own podcasts.
func (s *Service) My(ctx context.Context, creatorID uint, page int) (*PodcastPage, error) {
	p := pagination.New(page, s.pageSize)
	podcasts, total, err := s.repository.ListByCreator(ctx, creatorID, p.Number, p.Size)
	if err != nil {
		return nil, apperrors.Database("my podcasts", err)
	}
	return s.page(podcasts, total, p), nil
}

// MyOne returns one of the caller's podcasts with relations attached.
func (s *Service) MyOne(ctx context.Context, creatorID, id uint) (*models.Podcast, error) {
	podcast, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.IsOwner(creatorID, podcast.CreatorID) {
		return nil, apperrors.NotFound("podcast", id)
	}
	return podcast, nil
}

// ByCategorySlug returns the category and one page of its podcasts.
func (s *Service) ByCategorySlug(ctx context.Context, slug string, page int) (*CategoryFeed, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	p := pagination.New(page, s.pageSize)
	podcasts, total, err := s.repository.ListByCategory(ctx, category.ID, p.Number, p.Size)
	if err != nil {
		return nil, apperrors.Database("category podcasts", err)
	}

	return &CategoryFeed{
		Category:    category,
		PodcastPage: *s.page(podcasts, total, p),
	}, nil
}

// CountEpisodes returns how many episodes the podcast has.
func (s *Service) CountEpisodes(ctx context.Context, podcastID uint) (int64, error) {
	if _, err := s.mustExist(ctx, podcastID); err != nil {
		return 0, err
	}
	count, err := s.repository.CountEpisodes(ctx, podcastID)
	if err != nil {
		return 0, apperrors.Database("episode count", err)
	}
	return count, nil
}

// CountReviews returns how many reviews the podcast has.
func (s *Service) CountReviews(ctx context.Context, podcastID uint) (int64, error) {
	if _, err := s.mustExist(ctx, podcastID); err != nil {
		return 0, err
	}
	count, err := s.repository.CountReviews(ctx, podcastID)
	if err != nil {
		return 0, apperrors.Database("review count", err)
	}
	return count, nil
}

// getOwned loads a podcast and enforces ownership before any mutation.
// NotFound wins over Forbidden so callers cannot probe for ids.
func (s *Service) getOwned(ctx context.Context, callerID, id uint, denied string) (*models.Podcast, error) {
	podcast, err := s.mustExist(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.IsOwner(callerID, podcast.CreatorID) {
		return nil, apperrors.Forbidden(denied)
	}
	return podcast, nil
}

func (s *Service) mustExist(ctx context.Context, id uint) (*models.Podcast, error) {
	podcast, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPodcastNotFound) {
			return nil, apperrors.NotFound("podcast", id)
		}
		return nil, apperrors.Database("podcast lookup", err)
	}
	return podcast, nil
}

func (s *Service) page(podcasts []models.Podcast, total int64, p pagination.Page) *PodcastPage {
	return &PodcastPage{
		Podcasts:     podcasts,
		TotalResults: total,
		TotalPages:   p.TotalPages(total),
	}
}
