package types

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/internal/models"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromModelPodcast(t *testing.T) {
	categoryID := uint(3)
	podcast := &models.Podcast{
		Model:      gorm.Model{ID: 7},
		Title:      "Night Stories",
		CreatorID:  11,
		IsPromoted: true,
		CategoryID: &categoryID,
		Creator:    &models.User{Model: gorm.Model{ID: 11}, Email: "host@example.com", Role: models.RoleHost},
		Category:   &models.Category{Model: gorm.Model{ID: 3}, Name: "True Crime", Slug: "true-crime"},
		Episodes:   []models.Episode{{Model: gorm.Model{ID: 1}, PodcastID: 7, Title: "Pilot"}},
		Reviews:    []models.Review{{Model: gorm.Model{ID: 2}, PodcastID: 7, Text: "Great"}},
	}

	dto := FromModelPodcast(podcast)
	assert.Equal(t, uint(7), dto.ID)
	assert.Equal(t, "Night Stories", dto.Title)
	assert.True(t, dto.IsPromoted)
	assert.Equal(t, "true-crime", dto.Category.Slug)
	require.NotNil(t, dto.Creator)
	assert.Equal(t, "host@example.com", dto.Creator.Email)
	assert.Len(t, dto.Episodes, 1)
	assert.Len(t, dto.Reviews, 1)

	assert.Nil(t, FromModelPodcast(nil))
}

func TestFromModelUserHidesPassword(t *testing.T) {
	user := &models.User{
		Model:        gorm.Model{ID: 4},
		Email:        "host@example.com",
		PasswordHash: "secret-hash",
		Role:         models.RoleHost,
	}

	dto := FromModelUser(user)
	assert.Equal(t, "host@example.com", dto.Email)
	assert.Equal(t, "Host", dto.Role)
}

func TestSendAppErrorMapsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.NotFound("podcast", 1), http.StatusNotFound},
		{"forbidden", apperrors.Forbidden("nope"), http.StatusForbidden},
		{"conflict", apperrors.Conflict("taken"), http.StatusConflict},
		{"validation", apperrors.New(apperrors.ErrCodeValidation, "bad"), http.StatusBadRequest},
		{"unauthorized", apperrors.Unauthorized("who"), http.StatusUnauthorized},
		{"database", apperrors.Database("query", assert.AnError), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			SendAppError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSendAppErrorHidesStorageDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SendAppError(c, apperrors.Database("podcast lookup", assert.AnError))
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
