package database

import (
	"path/filepath"
	"testing"

	"github.com/helious23/challenge-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:    "successful connection with in-memory database",
			dbPath:  ":memory:",
			wantErr: false,
		},
		{
			name:    "successful connection with file database",
			dbPath:  filepath.Join(t.TempDir(), "test.db"),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, conn)
			assert.NotNil(t, conn.DB)

			if conn != nil {
				conn.Close()
			}
		})
	}
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	require.NotNil(t, conn)

	err = conn.Close()
	assert.NoError(t, err)

	err = conn.HealthCheck()
	assert.Error(t, err, "HealthCheck should fail after database is closed")
}

func TestDB_AutoMigrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	err = conn.AutoMigrate(models.All()...)
	require.NoError(t, err)

	// Every table the domain needs must exist after migration
	for _, table := range []string{"users", "categories", "podcasts", "episodes", "reviews", "subscriptions", "likes", "played_episodes"} {
		assert.True(t, conn.Migrator().HasTable(table), "missing table %s", table)
	}
}
