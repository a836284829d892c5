package usecases

import (
	"context"
	"fmt"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// ListAvailableMethodsUseCase serves the checkout method list, read through
// the cache when one is configured.
type ListAvailableMethodsUseCase struct {
	methodRepo paymentmethod.Repository
	cache      PaymentMethodCache
	logger     logger.Interface
}

func NewListAvailableMethodsUseCase(methodRepo paymentmethod.Repository, logger logger.Interface) *ListAvailableMethodsUseCase {
	return &ListAvailableMethodsUseCase{methodRepo: methodRepo, logger: logger}
}

func (uc *ListAvailableMethodsUseCase) SetCache(cache PaymentMethodCache) {
	uc.cache = cache
}

func (uc *ListAvailableMethodsUseCase) Execute(ctx context.Context) ([]*dto.PaymentMethodDTO, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetAvailable(ctx)
		if err != nil {
			uc.logger.Warnw("payment method cache read failed", "error", err)
		} else if cached != nil {
			return dto.ToPaymentMethodDTOList(cached), nil
		}
	}

	methods, err := uc.methodRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list payment methods", "error", err)
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	available := paymentmethod.NewRegistry(methods).Available()

	if uc.cache != nil {
		if err := uc.cache.SetAvailable(ctx, available); err != nil {
			uc.logger.Warnw("payment method cache write failed", "error", err)
		}
	}

	return dto.ToPaymentMethodDTOList(available), nil
}
