package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/domain/order"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/mappers"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/shared/db"
)

type CallbackLogRepository struct {
	db *gorm.DB
}

func NewCallbackLogRepository(db *gorm.DB) *CallbackLogRepository {
	return &CallbackLogRepository{db: db}
}

var _ order.CallbackLogRepository = (*CallbackLogRepository)(nil)

func (r *CallbackLogRepository) Create(ctx context.Context, l *order.CallbackLog) error {
	model, err := mappers.CallbackLogToModel(l)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create callback log: %w", err)
	}
	l.ID = model.ID
	return nil
}

func (r *CallbackLogRepository) ListByOrderID(ctx context.Context, orderID uint) ([]*order.CallbackLog, error) {
	var logModels []models.PaymentCallbackLogModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list callback logs: %w", err)
	}

	logs := make([]*order.CallbackLog, len(logModels))
	for i := range logModels {
		l, err := mappers.CallbackLogToDomain(&logModels[i])
		if err != nil {
			return nil, err
		}
		logs[i] = l
	}
	return logs, nil
}
