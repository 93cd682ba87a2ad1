package users

import (
	"context"
	"testing"
	"time"

	"github.com/helious23/challenge-backend/internal/models"
	"github.com/helious23/challenge-backend/internal/services/auth"
	apperrors "github.com/helious23/challenge-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (UserService, *gorm.DB, *auth.Service) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	signer := auth.NewService("test-secret", time.Hour)
	return NewService(NewRepository(db), signer), db, signer
}

func TestService_RegisterAndLogin(t *testing.T) {
	service, db, signer := setupService(t)
	ctx := context.Background()

	id, err := service.Register(ctx, RegisterParams{
		Email:    "Host@Example.com",
		Password: "sup3rsecret",
		Role:     models.RoleHost,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	assert.Equal(t, "host@example.com", user.Email, "emails are stored lowercased")
	assert.NotEqual(t, "sup3rsecret", user.PasswordHash)

	token, err := service.Login(ctx, "host@example.com", "sup3rsecret")
	require.NoError(t, err)

	identity, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, identity.ID)
	assert.Equal(t, models.RoleHost, identity.Role)
}

func TestService_RegisterNormalizesRoleCase(t *testing.T) {
	service, db, _ := setupService(t)
	ctx := context.Background()

	id, err := service.Register(ctx, RegisterParams{
		Email:    "listener@example.com",
		Password: "sup3rsecret",
		Role:     "listener",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	assert.Equal(t, models.RoleListener, user.Role)
}

func TestService_RegisterValidation(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		params RegisterParams
	}{
		{"bad email", RegisterParams{Email: "not-an-email", Password: "sup3rsecret", Role: models.RoleHost}},
		{"short password", RegisterParams{Email: "a@example.com", Password: "short", Role: models.RoleHost}},
		{"bad role", RegisterParams{Email: "a@example.com", Password: "sup3rsecret", Role: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.params)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetCode(err))
		})
	}
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	params := RegisterParams{Email: "host@example.com", Password: "sup3rsecret", Role: models.RoleHost}
	_, err := service.Register(ctx, params)
	require.NoError(t, err)

	_, err = service.Register(ctx, params)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetCode(err))
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterParams{
		Email: "host@example.com", Password: "sup3rsecret", Role: models.RoleHost,
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, "host@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.GetCode(err))
	wrongPassword := err.Error()

	_, err = service.Login(ctx, "missing@example.com", "sup3rsecret")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.GetCode(err))
	assert.Equal(t, wrongPassword, err.Error(), "a missing account is indistinguishable from a wrong password")
}

func TestService_UpdateEmail(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	id, err := service.Register(ctx, RegisterParams{
		Email: "host@example.com", Password: "sup3rsecret", Role: models.RoleHost,
	})
	require.NoError(t, err)
	_, err = service.Register(ctx, RegisterParams{
		Email: "other@example.com", Password: "sup3rsecret", Role: models.RoleListener,
	})
	require.NoError(t, err)

	// Same address is rejected
	err = service.UpdateEmail(ctx, id, "host@example.com")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetCode(err))

	// Another account's address is rejected
	err = service.UpdateEmail(ctx, id, "other@example.com")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetCode(err))

	require.NoError(t, service.UpdateEmail(ctx, id, "new@example.com"))

	profile, err := service.Profile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
}

func TestService_UpdatePassword(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	id, err := service.Register(ctx, RegisterParams{
		Email: "host@example.com", Password: "sup3rsecret", Role: models.RoleHost,
	})
	require.NoError(t, err)

	err = service.UpdatePassword(ctx, id, "sup3rsecret")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetCode(err))

	require.NoError(t, service.UpdatePassword(ctx, id, "an0ther-secret"))

	_, err = service.Login(ctx, "host@example.com", "sup3rsecret")
	require.Error(t, err)
	_, err = service.Login(ctx, "host@example.com", "an0ther-secret")
	require.NoError(t, err)
}
