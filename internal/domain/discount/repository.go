package discount

import "context"

type Repository interface {
	Create(ctx context.Context, c *Code) error
	// GetByCode returns a not-found AppError for unknown codes.
	GetByCode(ctx context.Context, code string) (*Code, error)
	// IncrementUsage bumps used_count only while below the usage limit and
	// returns ErrUsageLimitReached when no row qualified.
	IncrementUsage(ctx context.Context, codeID uint) error
	// CreateRedemption returns ErrAlreadyRedeemed when the order already has one.
	CreateRedemption(ctx context.Context, r *Redemption) error
}
