package users

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
)

// GetMe returns the caller's own account
func GetMe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}

		user, err := deps.UserService.Profile(c.Request.Context(), identity.ID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.UserResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			User:         types.FromModelUser(user),
		})
	}
}
