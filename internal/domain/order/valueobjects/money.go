package valueobjects

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyVND is the only settlement currency. VND has no minor unit in
// circulation, so amounts are whole dong.
const CurrencyVND = "VND"

// Money is an exact VND amount.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func NewMoneyFromInt(dong int64) Money {
	return Money{amount: decimal.NewFromInt(dong)}
}

// ParseMoney parses a decimal string such as "30000" or "30000.00".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsWholeDong reports whether the amount has no fractional part.
func (m Money) IsWholeDong() bool {
	return m.amount.Equal(m.amount.Truncate(0))
}

func (m Money) String() string {
	return m.amount.String() + " " + CurrencyVND
}
