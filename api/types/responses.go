package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for failed requests
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// CreatedResponse reports the id of a newly created resource
type CreatedResponse struct {
	BaseResponse
	ID uint `json:"id"`
}

// TokenResponse carries a signed access token
type TokenResponse struct {
	BaseResponse
	Token string `json:"token"`
}

// UserResponse for a single account
type UserResponse struct {
	BaseResponse
	User *User `json:"user"`
}

// PodcastsResponse for paginated podcast lists
type PodcastsResponse struct {
	BaseResponse
	Podcasts     []Podcast `json:"podcasts"`
	TotalResults int64     `json:"totalResults"`
	TotalPages   int       `json:"totalPages"`
}

// SinglePodcastResponse for getting a single podcast
type SinglePodcastResponse struct {
	BaseResponse
	Podcast *Podcast `json:"podcast"`
}

// EpisodesResponse for episode lists
type EpisodesResponse struct {
	BaseResponse
	Episodes []Episode `json:"episodes"`
}

// SingleEpisodeResponse for getting a single episode
type SingleEpisodeResponse struct {
	BaseResponse
	Episode *Episode `json:"episode"`
}

// ReviewsResponse for paginated review lists
type ReviewsResponse struct {
	BaseResponse
	Reviews      []Review `json:"reviews"`
	TotalResults int64    `json:"totalResults"`
	TotalPages   int      `json:"totalPages"`
}

// CategoriesResponse for category lists
type CategoriesResponse struct {
	BaseResponse
	Categories []Category `json:"categories"`
}

// CategoryFeedResponse for a category with one page of its podcasts
type CategoryFeedResponse struct {
	BaseResponse
	Category     *Category `json:"category"`
	Podcasts     []Podcast `json:"podcasts"`
	TotalResults int64     `json:"totalResults"`
	TotalPages   int       `json:"totalPages"`
}

// ToggleResponse reports the state of an edge after a toggle
type ToggleResponse struct {
	BaseResponse
	Active bool `json:"active"`
}

// CountResponse for edge counts on a podcast
type CountResponse struct {
	BaseResponse
	Count int64 `json:"count"`
}
