package types

import (
	"github.com/helious23/challenge-backend/internal/database"
	"github.com/helious23/challenge-backend/internal/services/auth"
	"github.com/helious23/challenge-backend/internal/services/categories"
	"github.com/helious23/challenge-backend/internal/services/engagement"
	"github.com/helious23/challenge-backend/internal/services/episodes"
	"github.com/helious23/challenge-backend/internal/services/podcasts"
	"github.com/helious23/challenge-backend/internal/services/reviews"
	"github.com/helious23/challenge-backend/internal/services/users"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	AuthService       *auth.Service
	UserService       users.UserService
	PodcastService    podcasts.PodcastService
	EpisodeService    episodes.EpisodeService
	ReviewService     reviews.ReviewService
	CategoryService   categories.CategoryService
	EngagementService engagement.EngagementService
}
