package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/mappers"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/shared/db"
	"github.com/vnstore/paycore/internal/shared/errors"
)

type BankAccountRepository struct {
	db *gorm.DB
}

func NewBankAccountRepository(db *gorm.DB) *BankAccountRepository {
	return &BankAccountRepository{db: db}
}

var _ banktransfer.BankAccountRepository = (*BankAccountRepository)(nil)

func (r *BankAccountRepository) Create(ctx context.Context, a *banktransfer.BankAccount) error {
	model := mappers.BankAccountToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("bank account already exists", a.BankCode()+"/"+a.AccountNumber())
		}
		return fmt.Errorf("failed to create bank account: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

func (r *BankAccountRepository) Update(ctx context.Context, a *banktransfer.BankAccount) error {
	model := mappers.BankAccountToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BankAccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"bank_name":    model.BankName,
			"account_name": model.AccountName,
			"branch":       model.Branch,
			"qr_image_ref": model.QRImageRef,
			"active":       model.Active,
			"updated_at":   model.UpdatedAt,
		}).Error; err != nil {
		return fmt.Errorf("failed to update bank account: %w", err)
	}
	return nil
}

func (r *BankAccountRepository) GetByID(ctx context.Context, id uint) (*banktransfer.BankAccount, error) {
	var model models.BankAccountModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("bank account not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}

	return mappers.BankAccountToDomain(&model), nil
}

func (r *BankAccountRepository) GetByAccountNumber(ctx context.Context, bankCode, accountNumber string) (*banktransfer.BankAccount, error) {
	var model models.BankAccountModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("bank_code = ? AND account_number = ?", bankCode, accountNumber).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("bank account not found", bankCode+"/"+accountNumber)
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}

	return mappers.BankAccountToDomain(&model), nil
}

func (r *BankAccountRepository) ListActive(ctx context.Context) ([]*banktransfer.BankAccount, error) {
	var accountModels []models.BankAccountModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Order("id ASC").
		Find(&accountModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	accounts := make([]*banktransfer.BankAccount, len(accountModels))
	for i := range accountModels {
		accounts[i] = mappers.BankAccountToDomain(&accountModels[i])
	}
	return accounts, nil
}
