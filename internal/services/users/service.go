package users

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"

	"github.com/helious23/challenge-backend/internal/models"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
)

type Service struct {
	repository UserRepository
	tokens     TokenSigner
}

func NewService(repository UserRepository, tokens TokenSigner) UserService {
	return &Service{
		repository: repository,
		tokens:     tokens,
	}
}

// Register creates a new account with a hashed password.
func (s *Service) Register(ctx context.Context, params RegisterParams) (uint, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "a valid email address is required")
	}
	if len(params.Password) < 8 {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "password must be at least 8 characters")
	}
	role, ok := models.ParseRole(string(params.Role))
	if !ok {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "role must be host or listener")
	}

	user := &models.User{Email: email, Role: role}
	if err := user.SetPassword(params.Password); err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hashing password")
	}

	if err := s.repository.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return 0, apperrors.Conflict("there is a user with that email already")
		}
		return 0, apperrors.Database("user create", err)
	}

	log.Printf("[INFO] Registered user %d (%s)", user.ID, user.Role)
	return user.ID, nil
}

// Login verifies the credentials and returns a signed access token.
// The same error covers a missing account and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", apperrors.Unauthorized("invalid email or password")
		}
		return "", apperrors.Database("user lookup", err)
	}

	if !user.CheckPassword(password) {
		return "", apperrors.Unauthorized("invalid email or password")
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "signing token")
	}
	return token, nil
}

// Profile returns the caller's own account.
func (s *Service) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.NotFound("user", userID)
		}
		return nil, apperrors.Database("user lookup", err)
	}
	return user, nil
}

// UpdateEmail changes the caller's email. The new address must differ
// from the current one and be unused by any other account.
func (s *Service) UpdateEmail(ctx context.Context, userID uint, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.New(apperrors.ErrCodeValidation, "a valid email address is required")
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email == email {
		return apperrors.Conflict("new email must differ from the current one")
	}

	user.Email = email
	if err := s.repository.Update(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return apperrors.Conflict("there is a user with that email already")
		}
		return apperrors.Database("email update", err)
	}
	return nil
}

// UpdatePassword changes the caller's password. Re-using the current
// password is rejected.
func (s *Service) UpdatePassword(ctx context.Context, userID uint, password string) error {
	if len(password) < 8 {
		return apperrors.New(apperrors.ErrCodeValidation, "password must be at least 8 characters")
	}

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if user.CheckPassword(password) {
		return apperrors.Conflict("new password must differ from the current one")
	}

	if err := user.SetPassword(password); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "hashing password")
	}
	if err := s.repository.Update(ctx, user); err != nil {
		return apperrors.Database("password update", err)
	}
	return nil
}
