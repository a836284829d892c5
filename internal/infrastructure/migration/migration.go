package migration

import (
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/shared/logger"
)

// Default script locations relative to the working directory.
const (
	DefaultScriptsPath      = "./internal/infrastructure/migration/scripts"
	DefaultGooseScriptsPath = "./internal/infrastructure/migration/scripts/goose"
)

// Manager runs the configured migration strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy by its configured name.
func NewManager(strategyName string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch strategyName {
	case StrategyGolangMigrate, "":
		path, err := filepath.Abs(DefaultScriptsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
		}
		strategy = NewGolangMigrateStrategy(path, log)
	case StrategyGoose:
		path, err := filepath.Abs(DefaultGooseScriptsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
		}
		strategy = NewGooseStrategy(path, log)
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", strategyName)
	}
	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) Rollback(db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	return m.strategy.MigrateDown(db, steps)
}

func (m *Manager) Version(db *gorm.DB) (int64, bool, error) {
	return m.strategy.Version(db)
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
