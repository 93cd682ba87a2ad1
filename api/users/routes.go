package users

import (
	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/api/types"
)

// RegisterRoutes registers account routes. Registration and login are
// public; everything under /me requires a token.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	// POST /api/v1/users - Create an account
	router.POST("/users", PostRegister(deps))

	// POST /api/v1/users/login - Exchange credentials for a token
	router.POST("/users/login", PostLogin(deps))

	// GET /api/v1/me - Current account
	router.GET("/me", requireAuth, GetMe(deps))

	// PATCH /api/v1/me - Change email and/or password
	router.PATCH("/me", requireAuth, PatchMe(deps))
}
