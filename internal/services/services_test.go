package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/akl-githu/platform-tracker/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The DSN is named after
// the test so parallel tests never share state across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Platform{},
		&models.Document{},
		&models.EventLog{},
	))
	return db
}

func countEvents(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.EventLog{}).Count(&n).Error)
	return n
}

func lastEvent(t *testing.T, db *gorm.DB) models.EventLog {
	t.Helper()
	var entry models.EventLog
	require.NoError(t, db.Order("id DESC").First(&entry).Error)
	return entry
}
