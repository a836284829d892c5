package usecases

import (
	"context"
	"time"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/shared/biztime"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type ToggleMethodCommand struct {
	ID string
	// NewDefault is required when the method being disabled is the default.
	NewDefault *string
	StaffID    uint
}

type ToggleMethodUseCase struct {
	writer *methodWriter
}

func NewToggleMethodUseCase(
	methodRepo paymentmethod.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *ToggleMethodUseCase {
	return &ToggleMethodUseCase{
		writer: &methodWriter{
			methodRepo: methodRepo,
			txMgr:      txMgr,
			now:        biztime.NowUTC,
			logger:     logger,
		},
	}
}

func (uc *ToggleMethodUseCase) SetCache(cache PaymentMethodCache) {
	uc.writer.cache = cache
}

// Execute flips one method and returns its new state.
func (uc *ToggleMethodUseCase) Execute(ctx context.Context, cmd ToggleMethodCommand) (*dto.PaymentMethodDTO, error) {
	id, err := parseMethodID(cmd.ID)
	if err != nil {
		return nil, err
	}
	var newDefault *vo.PaymentMethod
	if cmd.NewDefault != nil {
		d, err := parseMethodID(*cmd.NewDefault)
		if err != nil {
			return nil, err
		}
		newDefault = &d
	}

	var toggled *paymentmethod.Method
	_, err = uc.writer.run(ctx, func(r *paymentmethod.Registry, now time.Time) error {
		m, err := r.Toggle(id, newDefault, now)
		toggled = m
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.writer.logger.Infow("payment method toggled",
		"method", id,
		"enabled", toggled.IsEnabled(),
		"staff_id", cmd.StaffID,
	)
	return dto.ToPaymentMethodDTO(toggled), nil
}
