package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/mappers"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/shared/db"
	"github.com/vnstore/paycore/internal/shared/errors"
)

type BankTransferClaimRepository struct {
	db *gorm.DB
}

func NewBankTransferClaimRepository(db *gorm.DB) *BankTransferClaimRepository {
	return &BankTransferClaimRepository{db: db}
}

var _ banktransfer.ClaimRepository = (*BankTransferClaimRepository)(nil)

func (r *BankTransferClaimRepository) Create(ctx context.Context, c *banktransfer.Claim) error {
	model := mappers.ClaimToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("order already has a pending bank transfer claim")
		}
		return fmt.Errorf("failed to create bank transfer claim: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *BankTransferClaimRepository) Update(ctx context.Context, c *banktransfer.Claim, expected banktransfer.ClaimStatus) error {
	model := mappers.ClaimToModel(c)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BankTransferClaimModel{}).
		Where("id = ? AND status = ?", model.ID, expected.String()).
		Updates(map[string]interface{}{
			"pending_order_id": model.PendingOrderID,
			"bank_name":        model.BankName,
			"bank_code":        model.BankCode,
			"account_number":   model.AccountNumber,
			"account_name":     model.AccountName,
			"transaction_code": model.TransactionCode,
			"claimed_amount":   model.ClaimedAmount,
			"status":           model.Status,
			"note":             model.Note,
			"verified_at":      model.VerifiedAt,
			"verifier_id":      model.VerifierID,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update bank transfer claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return banktransfer.ErrAlreadyDecided
	}
	return nil
}

func (r *BankTransferClaimRepository) GetByID(ctx context.Context, id uint) (*banktransfer.Claim, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id), id)
}

func (r *BankTransferClaimRepository) GetByIDForUpdate(ctx context.Context, id uint) (*banktransfer.Claim, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()).Where("id = ?", id), id)
}

func (r *BankTransferClaimRepository) first(query *gorm.DB, id uint) (*banktransfer.Claim, error) {
	var model models.BankTransferClaimModel
	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("bank transfer claim not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get bank transfer claim: %w", err)
	}
	return mappers.ClaimToDomain(&model)
}

func (r *BankTransferClaimRepository) GetPendingByOrderID(ctx context.Context, orderID uint) (*banktransfer.Claim, error) {
	return r.pendingByOrder(db.GetTxFromContext(ctx, r.db), orderID)
}

func (r *BankTransferClaimRepository) GetPendingByOrderIDForUpdate(ctx context.Context, orderID uint) (*banktransfer.Claim, error) {
	return r.pendingByOrder(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), orderID)
}

func (r *BankTransferClaimRepository) pendingByOrder(query *gorm.DB, orderID uint) (*banktransfer.Claim, error) {
	var model models.BankTransferClaimModel

	if err := query.
		Where("pending_order_id = ?", orderID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending claim: %w", err)
	}

	return mappers.ClaimToDomain(&model)
}

func (r *BankTransferClaimRepository) ListByOrderID(ctx context.Context, orderID uint) ([]*banktransfer.Claim, error) {
	var claimModels []models.BankTransferClaimModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("submitted_at ASC, id ASC").
		Find(&claimModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list claims by order: %w", err)
	}

	return toClaims(claimModels)
}

func (r *BankTransferClaimRepository) ListByStatus(ctx context.Context, status banktransfer.ClaimStatus, page, pageSize int) ([]*banktransfer.Claim, int64, error) {
	byStatus := func() *gorm.DB {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.BankTransferClaimModel{}).
			Where("status = ?", status.String())
	}

	var total int64
	if err := byStatus().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
	}

	var claimModels []models.BankTransferClaimModel
	if err := byStatus().
		Order("submitted_at ASC, id ASC").
		Scopes(db.Paginate(page, pageSize)).
		Find(&claimModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list claims by status: %w", err)
	}

	claims, err := toClaims(claimModels)
	if err != nil {
		return nil, 0, err
	}
	return claims, total, nil
}

func (r *BankTransferClaimRepository) ListPendingSubmittedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*banktransfer.Claim, error) {
	var claimModels []models.BankTransferClaimModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND submitted_at < ?", banktransfer.ClaimStatusPending.String(), cutoff).
		Order("submitted_at ASC, id ASC").
		Limit(limit).
		Find(&claimModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list stale claims: %w", err)
	}

	return toClaims(claimModels)
}

func toClaims(claimModels []models.BankTransferClaimModel) ([]*banktransfer.Claim, error) {
	claims := make([]*banktransfer.Claim, len(claimModels))
	for i := range claimModels {
		c, err := mappers.ClaimToDomain(&claimModels[i])
		if err != nil {
			return nil, err
		}
		claims[i] = c
	}
	return claims, nil
}
