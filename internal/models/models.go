package models

import (
	"strings"

	"gorm.io/gorm"
)

// UserRole distinguishes podcast hosts from plain listeners.
type UserRole string

const (
	RoleHost     UserRole = "Host"
	RoleListener UserRole = "Listener"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleHost || r == RoleListener
}

// ParseRole normalizes client input into a UserRole regardless of case.
func ParseRole(s string) (UserRole, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "host":
		return RoleHost, true
	case "listener":
		return RoleListener, true
	}
	return "", false
}

// User represents an account. Engagement state (subscriptions, likes,
// played episodes) lives in the edge tables below, never on the user row.
type User struct {
	gorm.Model
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:Listener"`
	Podcasts     []Podcast `json:"podcasts,omitempty" gorm:"foreignKey:CreatorID"`
	Reviews      []Review  `json:"reviews,omitempty" gorm:"foreignKey:ReviewerID"`
}

// Podcast is the central catalog entity. CreatorID is set once at create
// time and never updated.
type Podcast struct {
	gorm.Model
	Title          string    `json:"title" gorm:"not null;index"`
	Description    string    `json:"description"`
	CoverImage     string    `json:"cover_image"`
	PromotionImage string    `json:"promotion_image"`
	IsPromoted     bool      `json:"is_promoted" gorm:"default:false;index"`
	Rating         int       `json:"rating" gorm:"default:0"`
	CreatorID      uint      `json:"creator_id" gorm:"not null;index"`
	Creator        *User     `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	CategoryID     *uint     `json:"category_id"`
	Category       *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Episodes       []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID"`
	Reviews        []Review  `json:"reviews,omitempty" gorm:"foreignKey:PodcastID"`
}

// Episode belongs to exactly one podcast and is removed with it.
type Episode struct {
	gorm.Model
	PodcastID   uint     `json:"podcast_id" gorm:"not null;index"`
	Podcast     *Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`
	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description"`
	MediaURL    string   `json:"media_url"`
	Rating      int      `json:"rating" gorm:"default:0"`
}

// Review is a listener's write-up for a podcast. ReviewerID is nullable:
// the review survives if the account goes away.
type Review struct {
	gorm.Model
	Title      string   `json:"title" gorm:"not null"`
	Text       string   `json:"text" gorm:"not null"`
	PodcastID  uint     `json:"podcast_id" gorm:"not null;index"`
	Podcast    *Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`
	ReviewerID *uint    `json:"reviewer_id"`
	Reviewer   *User    `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}

// Category groups podcasts. Slug is derived from the name and is the
// lookup key; deleting a category orphans its podcasts, never cascades.
type Category struct {
	gorm.Model
	Name     string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug     string    `json:"slug" gorm:"uniqueIndex;not null"`
	ImageURL string    `json:"image_url"`
	Podcasts []Podcast `json:"podcasts,omitempty" gorm:"foreignKey:CategoryID"`
}

// Subscription is the canonical User<->Podcast subscription edge. The
// composite unique index makes toggles race-safe: a duplicate insert
// conflicts instead of producing a second edge.
type Subscription struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_sub_user_podcast"`
	PodcastID uint    `json:"podcast_id" gorm:"not null;uniqueIndex:idx_sub_user_podcast;index"`
	User      User    `json:"-" gorm:"foreignKey:UserID"`
	Podcast   Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`
}

// Like is the canonical User<->Podcast like edge.
type Like struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_like_user_podcast"`
	PodcastID uint    `json:"podcast_id" gorm:"not null;uniqueIndex:idx_like_user_podcast;index"`
	User      User    `json:"-" gorm:"foreignKey:UserID"`
	Podcast   Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`
}

// PlayedEpisode records that a user has listened to an episode.
type PlayedEpisode struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_played_user_episode"`
	EpisodeID uint    `json:"episode_id" gorm:"not null;uniqueIndex:idx_played_user_episode;index"`
	User      User    `json:"-" gorm:"foreignKey:UserID"`
	Episode   Episode `json:"episode,omitempty" gorm:"foreignKey:EpisodeID"`
}

// All returns every model registered for migration, in dependency order.
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Podcast{},
		&Episode{},
		&Review{},
		&Subscription{},
		&Like{},
		&PlayedEpisode{},
	}
}

// RatingMin and RatingMax bound podcast and episode ratings.
const (
	RatingMin = 0
	RatingMax = 5
)

// ValidRating reports whether r is inside the allowed rating range.
func ValidRating(r int) bool {
	return r >= RatingMin && r <= RatingMax
}
