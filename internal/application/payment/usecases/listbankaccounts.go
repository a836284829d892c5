package usecases

import (
	"context"
	"fmt"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type ListBankAccountsUseCase struct {
	bankAccountRepo banktransfer.BankAccountRepository
	logger          logger.Interface
}

func NewListBankAccountsUseCase(bankAccountRepo banktransfer.BankAccountRepository, logger logger.Interface) *ListBankAccountsUseCase {
	return &ListBankAccountsUseCase{bankAccountRepo: bankAccountRepo, logger: logger}
}

// Execute lists the store's active receiving accounts.
func (uc *ListBankAccountsUseCase) Execute(ctx context.Context) ([]*dto.BankAccountDTO, error) {
	accounts, err := uc.bankAccountRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list bank accounts", "error", err)
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return dto.ToBankAccountDTOList(accounts), nil
}
