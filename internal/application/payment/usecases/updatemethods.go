package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/shared/biztime"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// MethodChange updates the fields that are set on one method.
type MethodChange struct {
	ID          string
	Name        *string
	Description *string
	Enabled     *bool
	Fee         *int64
	Position    *int
}

type UpdateMethodsCommand struct {
	Changes []MethodChange
	// Default names the new default method; nil keeps the current one.
	Default *string
	StaffID uint
}

// methodWriter runs registry commands under a lock on every method row and
// drops the checkout cache once they commit.
type methodWriter struct {
	methodRepo paymentmethod.Repository
	txMgr      TransactionManager
	cache      PaymentMethodCache
	now        func() time.Time
	logger     logger.Interface
}

func (w *methodWriter) run(ctx context.Context, fn func(r *paymentmethod.Registry, now time.Time) error) ([]*paymentmethod.Method, error) {
	var result []*paymentmethod.Method
	err := w.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		methods, err := w.methodRepo.ListAllForUpdate(ctx)
		if err != nil {
			return err
		}
		registry := paymentmethod.NewRegistry(methods)
		if err := fn(registry, w.now()); err != nil {
			return registryError(err)
		}
		result = registry.All()
		return w.methodRepo.SaveAll(ctx, result)
	})
	if err != nil {
		return nil, err
	}

	if w.cache != nil {
		if err := w.cache.Invalidate(ctx); err != nil {
			w.logger.Warnw("failed to invalidate payment method cache", "error", err)
		}
	}
	return result, nil
}

func registryError(err error) error {
	if errors.Is(err, paymentmethod.ErrMethodNotFound) {
		return apperrors.NewNotFoundError("payment method not found", err.Error())
	}
	return apperrors.NewValidationError("invalid payment method configuration", err.Error())
}

func parseMethodID(id string) (vo.PaymentMethod, error) {
	m, err := vo.NewPaymentMethod(id)
	if err != nil {
		return "", apperrors.NewValidationError("invalid payment method", id)
	}
	return m, nil
}

type UpdateMethodsUseCase struct {
	writer *methodWriter
}

func NewUpdateMethodsUseCase(
	methodRepo paymentmethod.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *UpdateMethodsUseCase {
	return &UpdateMethodsUseCase{
		writer: &methodWriter{
			methodRepo: methodRepo,
			txMgr:      txMgr,
			now:        biztime.NowUTC,
			logger:     logger,
		},
	}
}

func (uc *UpdateMethodsUseCase) SetCache(cache PaymentMethodCache) {
	uc.writer.cache = cache
}

// Execute applies all changes or none. The result is every method after
// the update.
func (uc *UpdateMethodsUseCase) Execute(ctx context.Context, cmd UpdateMethodsCommand) ([]*dto.PaymentMethodDTO, error) {
	updates := make([]paymentmethod.MethodUpdate, 0, len(cmd.Changes))
	for _, c := range cmd.Changes {
		id, err := parseMethodID(c.ID)
		if err != nil {
			return nil, err
		}
		u := paymentmethod.MethodUpdate{
			ID:          id,
			Name:        c.Name,
			Description: c.Description,
			Enabled:     c.Enabled,
			Position:    c.Position,
		}
		if c.Fee != nil {
			fee := vo.NewMoneyFromInt(*c.Fee)
			u.Fee = &fee
		}
		updates = append(updates, u)
	}

	var newDefault *vo.PaymentMethod
	if cmd.Default != nil {
		id, err := parseMethodID(*cmd.Default)
		if err != nil {
			return nil, err
		}
		newDefault = &id
	}

	methods, err := uc.writer.run(ctx, func(r *paymentmethod.Registry, now time.Time) error {
		return r.Apply(updates, newDefault, now)
	})
	if err != nil {
		return nil, err
	}

	uc.writer.logger.Infow("payment methods updated",
		"staff_id", cmd.StaffID,
		"changes", len(cmd.Changes),
		"default_changed", newDefault != nil,
	)
	return dto.ToPaymentMethodDTOList(methods), nil
}
