package services

import (
	"testing"

	"staybnb-backend/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.MigrateDatabase(db))
	return db
}

func registerTestUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()

	users := NewUserService(db)
	user, err := users.Register("Test User", "testuser", "79991234567", email, "secret123")
	require.NoError(t, err)
	return user.ID
}
