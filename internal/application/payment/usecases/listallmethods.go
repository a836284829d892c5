package usecases

import (
	"context"
	"fmt"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type ListAllMethodsUseCase struct {
	methodRepo paymentmethod.Repository
	logger     logger.Interface
}

func NewListAllMethodsUseCase(methodRepo paymentmethod.Repository, logger logger.Interface) *ListAllMethodsUseCase {
	return &ListAllMethodsUseCase{methodRepo: methodRepo, logger: logger}
}

// Execute returns every method, including disabled ones, for the admin view.
func (uc *ListAllMethodsUseCase) Execute(ctx context.Context) ([]*dto.PaymentMethodDTO, error) {
	methods, err := uc.methodRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list payment methods", "error", err)
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return dto.ToPaymentMethodDTOList(paymentmethod.NewRegistry(methods).All()), nil
}
