package categories

import (
	"context"
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"github.com/helious23/challenge-backend/internal/models"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
	"gorm.io/gorm"
)

type Service struct {
	repository CategoryRepository
}

func NewService(repository CategoryRepository) CategoryService {
	return &Service{repository: repository}
}

// GetOrCreate looks a category up by derived slug and creates it on first
// use. When two callers race on the same new name, the unique slug index
// lets exactly one insert through; the loser re-reads the winner's row.
func (s *Service) GetOrCreate(ctx context.Context, name, imageURL string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "category name is required")
	}
	categorySlug := slug.Make(name)

	category, err := s.repository.GetBySlug(ctx, categorySlug)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return nil, apperrors.Database("category lookup", err)
	}

	category = &models.Category{
		Name:     name,
		Slug:     categorySlug,
		ImageURL: imageURL,
	}
	if err := s.repository.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the create race: the winning row is canonical
			existing, readErr := s.repository.GetBySlug(ctx, categorySlug)
			if readErr != nil {
				return nil, apperrors.Database("category re-read", readErr)
			}
			return existing, nil
		}
		return nil, apperrors.Database("category create", err)
	}
	return category, nil
}

// All returns every category.
func (s *Service) All(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repository.List(ctx)
	if err != nil {
		return nil, apperrors.Database("category list", err)
	}
	return categories, nil
}

// GetBySlug returns the category with the given slug.
func (s *Service) GetBySlug(ctx context.Context, categorySlug string) (*models.Category, error) {
	category, err := s.repository.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, apperrors.Newf(apperrors.ErrCodeNotFound, "category with slug %q not found", categorySlug)
		}
		return nil, apperrors.Database("category lookup", err)
	}
	return category, nil
}

// Delete removes the category only; its podcasts become category-less.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return apperrors.NotFound("category", id)
		}
		return apperrors.Database("category delete", err)
	}
	return nil
}

// PodcastCount returns how many podcasts are filed under the category.
func (s *Service) PodcastCount(ctx context.Context, categoryID uint) (int64, error) {
	count, err := s.repository.CountPodcasts(ctx, categoryID)
	if err != nil {
		return 0, apperrors.Database("category podcast count", err)
	}
	return count, nil
}
