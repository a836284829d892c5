package banktransfer

import (
	"context"
	"time"
)

type ClaimRepository interface {
	// Create fails with a conflict AppError when the order already has a pending claim.
	Create(ctx context.Context, c *Claim) error
	// Update is a compare-and-set on status: it returns ErrAlreadyDecided when
	// the stored claim is no longer in the expected status.
	Update(ctx context.Context, c *Claim, expected ClaimStatus) error
	GetByID(ctx context.Context, id uint) (*Claim, error)
	// GetByIDForUpdate locks the claim row until the transaction on ctx ends.
	GetByIDForUpdate(ctx context.Context, id uint) (*Claim, error)
	// GetPendingByOrderID returns nil, nil when the order has no pending claim.
	GetPendingByOrderID(ctx context.Context, orderID uint) (*Claim, error)
	// GetPendingByOrderIDForUpdate is GetPendingByOrderID holding the row lock.
	GetPendingByOrderIDForUpdate(ctx context.Context, orderID uint) (*Claim, error)
	ListByOrderID(ctx context.Context, orderID uint) ([]*Claim, error)
	// ListByStatus orders by submission time, oldest first.
	ListByStatus(ctx context.Context, status ClaimStatus, page, pageSize int) ([]*Claim, int64, error)
	ListPendingSubmittedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*Claim, error)
}

type BankAccountRepository interface {
	Create(ctx context.Context, a *BankAccount) error
	Update(ctx context.Context, a *BankAccount) error
	GetByID(ctx context.Context, id uint) (*BankAccount, error)
	GetByAccountNumber(ctx context.Context, bankCode, accountNumber string) (*BankAccount, error)
	ListActive(ctx context.Context) ([]*BankAccount, error)
}
