package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/mappers"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/shared/db"
	"github.com/vnstore/paycore/internal/shared/errors"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ order.Repository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model, err := mappers.OrderToModel(o)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("order code already exists", o.OrderCode())
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.SetID(model.ID)
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id), fmt.Sprintf("%d", id))
}

func (r *OrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("order_code = ?", code), code)
}

func (r *OrderRepository) GetByIDForUpdate(ctx context.Context, id uint) (*order.Order, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()).Where("id = ?", id), fmt.Sprintf("%d", id))
}

func (r *OrderRepository) first(query *gorm.DB, key string) (*order.Order, error) {
	var model models.OrderModel
	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("order not found", key)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return mappers.OrderToDomain(&model)
}

// UpdatePaymentStatus is a compare-and-set on payment_status: of two writers
// racing from the same pending state only one matches the WHERE clause.
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, o *order.Order, expected vo.PaymentStatus) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ? AND payment_status = ?", o.ID(), expected.String()).
		Updates(map[string]interface{}{
			"payment_status": o.PaymentStatus().String(),
			"failure_reason": o.FailureReason(),
			"finalized_at":   o.FinalizedAt(),
			"version":        o.Version(),
			"updated_at":     o.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update order payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrAlreadyFinalized
	}
	return nil
}
