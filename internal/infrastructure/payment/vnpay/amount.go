package vnpay

import (
	"fmt"

	"github.com/shopspring/decimal"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

// amountScale is the factor between VND and the gateway's vnp_Amount field.
var amountScale = decimal.NewFromInt(100)

// EncodeAmount converts a VND amount to the gateway's integer representation
// (VND x 100). Fractional dong and non-positive amounts are rejected.
func EncodeAmount(m vo.Money) (string, error) {
	if !m.IsPositive() {
		return "", fmt.Errorf("amount must be positive, got %s", m)
	}
	if !m.IsWholeDong() {
		return "", fmt.Errorf("amount %s has a fractional part", m)
	}
	return m.Decimal().Mul(amountScale).StringFixed(0), nil
}

// DecodeAmount reverses EncodeAmount.
func DecodeAmount(raw string) (vo.Money, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return vo.Money{}, fmt.Errorf("invalid vnp_Amount %q: %w", raw, err)
	}
	if !d.Equal(d.Truncate(0)) || d.IsNegative() {
		return vo.Money{}, fmt.Errorf("invalid vnp_Amount %q", raw)
	}
	return vo.NewMoney(d.Div(amountScale)), nil
}
