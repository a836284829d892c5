package migration

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vnstore/paycore/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGenerator_CreateMigration(t *testing.T) {
	dir := t.TempDir()
	gooseDir := filepath.Join(dir, "goose")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000002_seed.up.sql"), nil, 0o644))

	g := NewGenerator(dir, gooseDir, testLogger())
	g.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	paths, err := g.CreateMigration("add_refunds")
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.FileExists(t, filepath.Join(dir, "000003_add_refunds.up.sql"))
	assert.FileExists(t, filepath.Join(dir, "000003_add_refunds.down.sql"))
	content, err := os.ReadFile(filepath.Join(gooseDir, "00003_add_refunds.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "-- +goose Down")

	_, err = g.CreateMigration("Add Refunds")
	assert.Error(t, err)
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	manager := NewManagerWithStrategy(NewGormAutoMigrateStrategy(testLogger()), testLogger())
	require.NoError(t, manager.Migrate(db))

	for _, table := range []string{"orders", "bank_transfer_claims", "payment_methods", "discount_redemptions", "payment_callback_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.Error(t, manager.Rollback(db, 1))
	assert.Error(t, manager.Rollback(db, 0))
}

func TestNewManager_UnknownStrategy(t *testing.T) {
	_, err := NewManager("flyway", testLogger())
	assert.Error(t, err)

	m, err := NewManager(StrategyGoose, testLogger())
	require.NoError(t, err)
	assert.Equal(t, StrategyGoose, m.Strategy().GetName())
}
