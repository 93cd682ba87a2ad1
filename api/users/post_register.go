package users

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
	"github.com/helious23/challenge-backend/internal/models"
	"github.com/helious23/challenge-backend/internal/services/users"
)

// PostRegister creates a new account
// @Summary      Register an account
// @Description  Create a new host or listener account with a unique email.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body types.RegisterRequest true "Account details"
// @Success      201 {object} types.CreatedResponse "Account created"
// @Failure      400 {object} types.ErrorResponse "Invalid request body or fields"
// @Failure      409 {object} types.ErrorResponse "Email already registered"
// @Router       /api/v1/users [post]
func PostRegister(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		id, err := deps.UserService.Register(c.Request.Context(), users.RegisterParams{
			Email:    req.Email,
			Password: req.Password,
			Role:     models.UserRole(req.Role),
		})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.CreatedResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Account created successfully",
			},
			ID: id,
		})
	}
}
