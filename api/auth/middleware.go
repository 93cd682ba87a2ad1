package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/services/auth"
)

const identityKey = "identity"

// RequireAuth validates the Bearer token and stores the caller's
// identity on the request context. Requests without a valid token are
// rejected.
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		identity, err := authService.Verify(parts[1])
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the authenticated caller stored by RequireAuth.
func Identity(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}

// MustIdentity returns the caller or rejects the request. Handlers
// behind RequireAuth can rely on the second return being true.
func MustIdentity(c *gin.Context) (*auth.Identity, bool) {
	identity, ok := Identity(c)
	if !ok {
		unauthorized(c, "Authentication required")
		return nil, false
	}
	return identity, true
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, types.ErrorResponse{
		Status:  types.StatusError,
		Message: message,
	})
	c.Abort()
}
