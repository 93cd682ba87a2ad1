package users

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// PostLogin exchanges credentials for a signed access token
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body types.LoginRequest true "Credentials"
// @Success      200 {object} types.TokenResponse "Signed access token"
// @Failure      401 {object} types.ErrorResponse "Unknown email or wrong password"
// @Router       /api/v1/users/login [post]
func PostLogin(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		token, err := deps.UserService.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.TokenResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Token:        token,
		})
	}
}
