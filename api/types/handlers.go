package types

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// QueryPage reads the "page" query parameter, defaulting to the first page
func QueryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendAppError maps a service error onto its HTTP status. Storage and
// internal faults are logged server-side and reported generically.
func SendAppError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: apperrors.Message(err),
		Code:    string(apperrors.GetCode(err)),
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
