package http

import (
	"context"
	"fmt"
	"net/url"

	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
)

// unconfiguredGateway stands in for VNPAY when no merchant credentials are
// configured. Nothing can be signed or verified without the secret.
type unconfiguredGateway struct{}

func (unconfiguredGateway) BuildRedirect(ctx context.Context, req paymentgateway.RedirectRequest) (string, error) {
	return "", fmt.Errorf("vnpay merchant credentials are not configured")
}

func (unconfiguredGateway) VerifyCallback(params url.Values) (*paymentgateway.CallbackData, error) {
	return nil, fmt.Errorf("vnpay merchant credentials are not configured: %w", paymentgateway.ErrSignatureInvalid)
}

// sqlPinger reports database reachability for the health check.
type sqlPinger struct {
	db *gorm.DB
}

func (p sqlPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
