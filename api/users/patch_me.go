package users

import (
	"github.com/gin-gonic/gin"
	authmw "github.com/helious23/challenge-backend/api/auth"
	"github.com/helious23/challenge-backend/api/types"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
)

// PatchMe changes the caller's email and/or password. Either field may
// be sent on its own; an empty body is rejected.
func PatchMe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authmw.MustIdentity(c)
		if !ok {
			return
		}

		var req types.UpdateProfileRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if req.Email == nil && req.Password == nil {
			types.SendAppError(c, apperrors.New(apperrors.ErrCodeValidation, "email or password is required"))
			return
		}

		ctx := c.Request.Context()
		if req.Email != nil {
			if err := deps.UserService.UpdateEmail(ctx, identity.ID, *req.Email); err != nil {
				types.SendAppError(c, err)
				return
			}
		}
		if req.Password != nil {
			if err := deps.UserService.UpdatePassword(ctx, identity.ID, *req.Password); err != nil {
				types.SendAppError(c, err)
				return
			}
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Profile updated successfully",
		})
	}
}
