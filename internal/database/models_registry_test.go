package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The registry must stay migratable as a whole; a model that breaks
// AutoMigrate would otherwise only surface at server startup.
func TestPersistentModelsMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(PersistentModels()...))

	for _, m := range PersistentModels() {
		require.True(t, db.Migrator().HasTable(m), "expected table for %T", m)
	}
}
