package users

import (
	"context"

	"github.com/helious23/challenge-backend/internal/models"
)

// UserRepository defines the storage operations for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenSigner mints an access token for an authenticated user.
type TokenSigner interface {
	Sign(userID uint, role models.UserRole) (string, error)
}

// RegisterParams carries the fields for a new account.
type RegisterParams struct {
	Email    string
	Password string
	Role     models.UserRole
}

// UserService defines the business operations for accounts
type UserService interface {
	Register(ctx context.Context, params RegisterParams) (uint, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID uint) (*models.User, error)
	UpdateEmail(ctx context.Context, userID uint, email string) error
	UpdatePassword(ctx context.Context, userID uint, password string) error
}
