package reviews

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
	repository ReviewRepository
	podcasts   PodcastResolver
	pageSize   int
}

func NewService(repository ReviewRepository, podcasts PodcastResolver) ReviewService {
	return &Service{
		repository: repository,
		podcasts:   podcasts,
		pageSize:   pagination.DefaultPageSize,
	}
}

// Create attaches a new review by the caller to an existing podcast.
// Nothing is written when the podcast does not exist.
func (s *Service) Create(ctx context.Context, reviewerID, podcastID uint, params CreateReviewParams) (uint, error) {
	if strings.TrimSpace(params.Text) == "" {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "review text is required")
	}

	if _, err := s.podcasts.Get(ctx, podcastID); err != nil {
		return 0, err
	}

	review := &models.Review{
		Title:      params.Title,
		Text:       params.Text,
		PodcastID:  podcastID,
		ReviewerID: &reviewerID,
	}
	if err := s.repository.Create(ctx, review); err != nil {
		return 0, apperrors.Database("review create", err)
	}

	log.Printf("[INFO] Created review %d on podcast %d", review.ID, podcastID)
	return review.ID, nil
}

// Delete removes a review. Only its author may do so; the review stays
// untouched for anyone else.
func (s *Service) Delete(ctx context.Context, callerID, reviewID uint) error {
	review, err := s.repository.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			return apperrors.NotFound("review", reviewID)
		}
		return apperrors.Database("review lookup", err)
	}

	if review.ReviewerID == nil || !authz.IsOwner(callerID, *review.ReviewerID) {
		return apperrors.Forbidden("only the author may delete this review")
	}

	if err := s.repository.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			return apperrors.NotFound("review", reviewID)
		}
		return apperrors.Database("review delete", err)
	}
	return nil
}

// ListForPodcast returns one page of a podcast's reviews.
func (s *Service) ListForPodcast(ctx context.Context, podcastID uint, page int) (*ReviewPage, error) {
	if _, err := s.podcasts.Get(ctx, podcastID); err != nil {
		return nil, err
	}

	p := pagination.New(page, s.pageSize)
	reviews, total, err := s.repository.ListForPodcast(ctx, podcastID, p.Number, p.Size)
	if err != nil {
		return nil, apperrors.Database("review list", err)
	}

	return &ReviewPage{
		Reviews:      reviews,
		TotalResults: total,
		TotalPages:   p.TotalPages(total),
	}, nil
}
