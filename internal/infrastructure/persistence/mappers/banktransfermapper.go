package mappers

import (
	"fmt"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
)

func ClaimToModel(c *banktransfer.Claim) *models.BankTransferClaimModel {
	details := c.BankDetails()
	model := &models.BankTransferClaimModel{
		ID:              c.ID(),
		OrderID:         c.OrderID(),
		BankName:        details.BankName,
		BankCode:        details.BankCode,
		AccountNumber:   details.AccountNumber,
		AccountName:     details.AccountName,
		TransactionCode: c.TransactionCode(),
		ClaimedAmount:   c.ClaimedAmount().Decimal(),
		SubmittedAt:     c.SubmittedAt(),
		Status:          c.Status().String(),
		Note:            c.Note(),
		VerifiedAt:      c.VerifiedAt(),
		VerifierID:      c.VerifierID(),
		Version:         c.Version(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
	if c.Status().IsPending() {
		orderID := c.OrderID()
		model.PendingOrderID = &orderID
	}
	return model
}

func ClaimToDomain(model *models.BankTransferClaimModel) (*banktransfer.Claim, error) {
	status, err := banktransfer.NewClaimStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("claim %d: %w", model.ID, err)
	}
	return banktransfer.ReconstructClaim(banktransfer.ClaimReconstructParams{
		ID:      model.ID,
		OrderID: model.OrderID,
		BankDetails: banktransfer.BankDetails{
			BankName:      model.BankName,
			BankCode:      model.BankCode,
			AccountNumber: model.AccountNumber,
			AccountName:   model.AccountName,
		},
		TransactionCode: model.TransactionCode,
		ClaimedAmount:   vo.NewMoney(model.ClaimedAmount),
		SubmittedAt:     model.SubmittedAt,
		Status:          status,
		Note:            model.Note,
		VerifiedAt:      model.VerifiedAt,
		VerifierID:      model.VerifierID,
		Version:         model.Version,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}), nil
}

func BankAccountToModel(a *banktransfer.BankAccount) *models.BankAccountModel {
	return &models.BankAccountModel{
		ID:            a.ID(),
		BankName:      a.BankName(),
		BankCode:      a.BankCode(),
		AccountNumber: a.AccountNumber(),
		AccountName:   a.AccountName(),
		Branch:        a.Branch(),
		QRImageRef:    a.QRImageRef(),
		Active:        a.IsActive(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func BankAccountToDomain(model *models.BankAccountModel) *banktransfer.BankAccount {
	return banktransfer.ReconstructBankAccount(
		model.ID, model.BankName, model.BankCode, model.AccountNumber, model.AccountName,
		model.Branch, model.QRImageRef, model.Active, model.CreatedAt, model.UpdatedAt,
	)
}
