package progress

import (
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open("sqlite", filepath.Join(t.TempDir(), "progress.db")+"?_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
