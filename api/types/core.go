package types

import (
	"time"

	"github.com/helious23/challenge-backend/internal/models"
)

// Core API data types. These are the wire representations of the
// domain models; transformers.go maps between the two.

// User represents an account on the wire. The password hash never
// leaves the service layer.
type User struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

// Category represents a podcast category
type Category struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ImageURL     string `json:"imageUrl,omitempty"`
	PodcastCount int64  `json:"podcastCount"`
}

// Podcast represents a podcast on the wire
type Podcast struct {
	ID             uint      `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	CoverImage     string    `json:"coverImage,omitempty"`
	PromotionImage string    `json:"promotionImage,omitempty"`
	IsPromoted     bool      `json:"isPromoted"`
	Rating         int       `json:"rating"`
	CreatorID      uint      `json:"creatorId"`
	Creator        *User     `json:"creator,omitempty"`
	Category       *Category `json:"category,omitempty"`
	Episodes       []Episode `json:"episodes,omitempty"`
	Reviews        []Review  `json:"reviews,omitempty"`
}

// Episode represents an episode on the wire
type Episode struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	PodcastID   uint      `json:"podcastId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	Rating      int       `json:"rating"`
}

// Review represents a review on the wire
type Review struct {
	ID         uint      `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	PodcastID  uint      `json:"podcastId"`
	ReviewerID *uint     `json:"reviewerId,omitempty"`
	Title      string    `json:"title,omitempty"`
	Text       string    `json:"text"`
}

// FromModelUser converts a domain user to its wire form
func FromModelUser(user *models.User) *User {
	if user == nil {
		return nil
	}
	return &User{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,
		Email:     user.Email,
		Role:      string(user.Role),
	}
}

// FromModelCategory converts a domain category to its wire form
func FromModelCategory(category *models.Category) *Category {
	if category == nil {
		return nil
	}
	return &Category{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		ImageURL: category.ImageURL,
	}
}

// FromModelPodcast converts a domain podcast to its wire form,
// including whatever relations were loaded
func FromModelPodcast(podcast *models.Podcast) *Podcast {
	if podcast == nil {
		return nil
	}
	result := &Podcast{
		ID:             podcast.ID,
		CreatedAt:      podcast.CreatedAt,
		UpdatedAt:      podcast.UpdatedAt,
		Title:          podcast.Title,
		Description:    podcast.Description,
		CoverImage:     podcast.CoverImage,
		PromotionImage: podcast.PromotionImage,
		IsPromoted:     podcast.IsPromoted,
		Rating:         podcast.Rating,
		CreatorID:      podcast.CreatorID,
		Creator:        FromModelUser(podcast.Creator),
		Category:       FromModelCategory(podcast.Category),
	}
	for i := range podcast.Episodes {
		result.Episodes = append(result.Episodes, *FromModelEpisode(&podcast.Episodes[i]))
	}
	for i := range podcast.Reviews {
		result.Reviews = append(result.Reviews, *FromModelReview(&podcast.Reviews[i]))
	}
	return result
}

// FromModelPodcasts converts a slice of domain podcasts without relations
func FromModelPodcasts(podcasts []models.Podcast) []Podcast {
	result := make([]Podcast, 0, len(podcasts))
	for i := range podcasts {
		p := podcasts[i]
		result = append(result, Podcast{
			ID:             p.ID,
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
			Title:          p.Title,
			Description:    p.Description,
			CoverImage:     p.CoverImage,
			PromotionImage: p.PromotionImage,
			IsPromoted:     p.IsPromoted,
			Rating:         p.Rating,
			CreatorID:      p.CreatorID,
			Category:       FromModelCategory(p.Category),
		})
	}
	return result
}

// FromModelEpisode converts a domain episode to its wire form
func FromModelEpisode(episode *models.Episode) *Episode {
	if episode == nil {
		return nil
	}
	return &Episode{
		ID:          episode.ID,
		CreatedAt:   episode.CreatedAt,
		PodcastID:   episode.PodcastID,
		Title:       episode.Title,
		Description: episode.Description,
		MediaURL:    episode.MediaURL,
		Rating:      episode.Rating,
	}
}

// FromModelEpisodes converts a slice of domain episodes
func FromModelEpisodes(episodes []models.Episode) []Episode {
	result := make([]Episode, 0, len(episodes))
	for i := range episodes {
		result = append(result, *FromModelEpisode(&episodes[i]))
	}
	return result
}

// FromModelReview converts a domain review to its wire form
func FromModelReview(review *models.Review) *Review {
	if review == nil {
		return nil
	}
	return &Review{
		ID:         review.ID,
		CreatedAt:  review.CreatedAt,
		PodcastID:  review.PodcastID,
		ReviewerID: review.ReviewerID,
		Title:      review.Title,
		Text:       review.Text,
	}
}

// FromModelReviews converts a slice of domain reviews
func FromModelReviews(reviews []models.Review) []Review {
	result := make([]Review, 0, len(reviews))
	for i := range reviews {
		result = append(result, *FromModelReview(&reviews[i]))
	}
	return result
}

// FromModelCategories converts a slice of domain categories
func FromModelCategories(categories []models.Category) []Category {
	result := make([]Category, 0, len(categories))
	for i := range categories {
		result = append(result, *FromModelCategory(&categories[i]))
	}
	return result
}
