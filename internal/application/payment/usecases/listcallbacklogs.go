package usecases

import (
	"context"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/order"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// ListCallbackLogsUseCase returns every gateway delivery recorded for an
// order, whatever its outcome.
type ListCallbackLogsUseCase struct {
	orderRepo   order.Repository
	callbackLog order.CallbackLogRepository
	logger      logger.Interface
}

func NewListCallbackLogsUseCase(
	orderRepo order.Repository,
	callbackLog order.CallbackLogRepository,
	logger logger.Interface,
) *ListCallbackLogsUseCase {
	return &ListCallbackLogsUseCase{
		orderRepo:   orderRepo,
		callbackLog: callbackLog,
		logger:      logger,
	}
}

func (uc *ListCallbackLogsUseCase) Execute(ctx context.Context, orderID uint) ([]*dto.CallbackLogDTO, error) {
	if _, err := uc.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	logs, err := uc.callbackLog.ListByOrderID(ctx, orderID)
	if err != nil {
		uc.logger.Errorw("failed to list callback logs", "error", err, "order_id", orderID)
		return nil, err
	}
	return dto.ToCallbackLogDTOList(logs), nil
}
