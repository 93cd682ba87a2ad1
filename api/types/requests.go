package types

// Request bodies. Pointers mark optional fields so a missing key can
// be told apart from a zero value.

// RegisterRequest creates a new account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// LoginRequest exchanges credentials for a token
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest changes the caller's email and/or password
type UpdateProfileRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// CreatePodcastRequest creates a new podcast
type CreatePodcastRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	CoverImage    string `json:"coverImage"`
	CategoryName  string `json:"categoryName" binding:"required"`
	CategoryImage string `json:"categoryImage"`
}

// UpdatePodcastRequest applies a partial podcast update
type UpdatePodcastRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	CoverImage   *string `json:"coverImage,omitempty"`
	Rating       *int    `json:"rating,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
}

// PromotePodcastRequest marks a podcast as promoted
type PromotePodcastRequest struct {
	PromotionImage string `json:"promotionImage"`
}

// CreateEpisodeRequest adds an episode to a podcast
type CreateEpisodeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	MediaURL    string `json:"mediaUrl"`
}

// UpdateEpisodeRequest applies a partial episode update
type UpdateEpisodeRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	MediaURL    *string `json:"mediaUrl,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
}

// CreateReviewRequest attaches a review to a podcast
type CreateReviewRequest struct {
	Title string `json:"title"`
	Text  string `json:"text" binding:"required"`
}
