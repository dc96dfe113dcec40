// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/totomace/VitaZen-sub000/config"
	"github.com/totomace/VitaZen-sub000/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory sqlite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

// NewUser inserts a user row so owned rows have a parent.
func NewUser(t *testing.T, db *gorm.DB, uid string) *models.User {
	t.Helper()
	u := &models.User{UID: uid, Email: uid + "@example.com", Username: uid, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}
