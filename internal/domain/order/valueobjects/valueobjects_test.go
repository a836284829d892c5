package valueobjects

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyFromInt(30000)
	b := NewMoneyFromInt(5000)

	assert.True(t, a.Add(b).Equals(NewMoneyFromInt(35000)))
	assert.True(t, a.Sub(b).Equals(NewMoneyFromInt(25000)))
	assert.True(t, b.MulInt(3).Equals(NewMoneyFromInt(15000)))
	assert.True(t, a.Min(b).Equals(b))
	assert.True(t, b.Sub(a).IsNegative())
	assert.Equal(t, "30000 VND", a.String())
}

func TestMoneyIsWholeDong(t *testing.T) {
	assert.True(t, NewMoneyFromInt(1999999).IsWholeDong())
	assert.False(t, NewMoney(decimal.RequireFromString("10.5")).IsWholeDong())

	m, err := ParseMoney("30000.00")
	require.NoError(t, err)
	assert.True(t, m.IsWholeDong())

	_, err = ParseMoney("abc")
	assert.Error(t, err)
}

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		status   PaymentStatus
		terminal bool
		success  bool
	}{
		{PaymentStatusPending, false, false},
		{PaymentStatusPaid, true, true},
		{PaymentStatusVerified, true, true},
		{PaymentStatusFailed, true, false},
		{PaymentStatusCancelled, true, false},
		{PaymentStatus("refunded"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.success, tt.status.IsSuccess())
		})
	}

	_, err := NewPaymentStatus("unknown")
	assert.Error(t, err)
}

func TestNewPaymentMethod(t *testing.T) {
	pm, err := NewPaymentMethod("vnpay")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodVNPay, pm)

	_, err = NewPaymentMethod("momo")
	assert.Error(t, err)
}

func TestNewLineItem(t *testing.T) {
	li, err := NewLineItem("TEA-01", "Green tea", NewMoneyFromInt(15000), 2)
	require.NoError(t, err)
	assert.True(t, li.Total().Equals(NewMoneyFromInt(30000)))

	_, err = NewLineItem("", "x", NewMoneyFromInt(1), 1)
	assert.Error(t, err)
	_, err = NewLineItem("A", "x", NewMoneyFromInt(1), 0)
	assert.Error(t, err)
	_, err = NewLineItem("A", "x", NewMoneyFromInt(-1), 1)
	assert.Error(t, err)
}
