package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/domain/discount"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/mappers"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/shared/biztime"
	"github.com/vnstore/paycore/internal/shared/db"
	"github.com/vnstore/paycore/internal/shared/errors"
)

type DiscountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

var _ discount.Repository = (*DiscountRepository)(nil)

func (r *DiscountRepository) Create(ctx context.Context, c *discount.Code) error {
	model := mappers.DiscountCodeToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("discount code already exists", c.Code())
		}
		return fmt.Errorf("failed to create discount code: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *DiscountRepository) GetByCode(ctx context.Context, code string) (*discount.Code, error) {
	var model models.DiscountCodeModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("code = ?", discount.NormalizeCode(code)).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("discount code not found", code)
		}
		return nil, fmt.Errorf("failed to get discount code: %w", err)
	}

	return mappers.DiscountCodeToDomain(&model)
}

// IncrementUsage is a conditional update so concurrent checkouts cannot push
// used_count past usage_limit.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, codeID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DiscountCodeModel{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", codeID).
		Updates(map[string]interface{}{
			"used_count": gorm.Expr("used_count + 1"),
			"updated_at": biztime.NowUTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to increment discount usage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return discount.ErrUsageLimitReached
	}
	return nil
}

func (r *DiscountRepository) CreateRedemption(ctx context.Context, red *discount.Redemption) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.RedemptionToModel(red)).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return discount.ErrAlreadyRedeemed
		}
		return fmt.Errorf("failed to create discount redemption: %w", err)
	}
	return nil
}
