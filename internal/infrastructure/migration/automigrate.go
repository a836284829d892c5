package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// Models lists every persisted model, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.OrderModel{},
		&models.PaymentCallbackLogModel{},
		&models.BankAccountModel{},
		&models.BankTransferClaimModel{},
		&models.PaymentMethodModel{},
		&models.DiscountCodeModel{},
		&models.DiscountRedemptionModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the gorm models. It is meant
// for local development and tests; it never drops columns and cannot go down.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	s.logger.Infow("auto migration completed", "models", len(Models()))
	return nil
}

func (s *GormAutoMigrateStrategy) MigrateDown(*gorm.DB, int) error {
	return fmt.Errorf("down migrations are not supported by %s", s.GetName())
}

func (s *GormAutoMigrateStrategy) Version(*gorm.DB) (int64, bool, error) {
	return 0, false, nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm-automigrate"
}
