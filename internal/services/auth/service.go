// Package auth signs and verifies the bearer tokens that carry a caller's
// identity. The transport layer validates tokens here and passes the
// resolved identity into the domain services explicitly.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/helious23/challenge-backend/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the JWT payload for an authenticated user.
type Claims struct {
	UserID uint            `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the caller identity handed to domain services.
type Identity struct {
	ID   uint
	Role models.UserRole
}

// Service issues and validates tokens with a shared HMAC secret.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewService(secret string, tokenTTL time.Duration) *Service {
	return &Service{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Sign issues a token for the given user.
func (s *Service) Sign(userID uint, role models.UserRole) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the caller identity it carries.
func (s *Service) Verify(tokenString string) (*Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return &Identity{ID: claims.UserID, Role: claims.Role}, nil
}
