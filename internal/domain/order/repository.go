package order

import (
	"context"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	// GetByID returns a not-found AppError when the order does not exist.
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByCode(ctx context.Context, code string) (*Order, error)
	// GetByIDForUpdate loads the order and locks its row until the
	// transaction on ctx ends. Must be called inside a transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Order, error)
	// UpdatePaymentStatus persists a transition only if the stored status
	// still equals expected. It returns ErrAlreadyFinalized when another
	// writer got there first.
	UpdatePaymentStatus(ctx context.Context, o *Order, expected vo.PaymentStatus) error
}
