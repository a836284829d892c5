package paymentmethod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

var now = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func seededRegistry() *Registry {
	return NewRegistry([]*Method{
		ReconstructMethod(vo.PaymentMethodVNPay, "VNPAY", "Cards and QR", true, vo.Zero(), 3, false, now),
		ReconstructMethod(vo.PaymentMethodCOD, "Cash on delivery", "", true, vo.NewMoneyFromInt(15000), 1, true, now),
		ReconstructMethod(vo.PaymentMethodBankTransfer, "Bank transfer", "", false, vo.Zero(), 2, false, now),
	})
}

func ids(methods []*Method) []vo.PaymentMethod {
	out := make([]vo.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		out = append(out, m.ID())
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func TestRegistry_AvailableSortedByPosition(t *testing.T) {
	r := seededRegistry()

	assert.Equal(t, []vo.PaymentMethod{vo.PaymentMethodCOD, vo.PaymentMethodVNPay}, ids(r.Available()))
	assert.Equal(t, []vo.PaymentMethod{vo.PaymentMethodCOD, vo.PaymentMethodBankTransfer, vo.PaymentMethodVNPay}, ids(r.All()))
	assert.True(t, r.IsAvailable(vo.PaymentMethodVNPay))
	assert.False(t, r.IsAvailable(vo.PaymentMethodBankTransfer))
	assert.Equal(t, vo.PaymentMethodCOD, r.Default().ID())
}

func TestRegistry_Apply(t *testing.T) {
	tests := []struct {
		name        string
		updates     []MethodUpdate
		newDefault  *vo.PaymentMethod
		wantErr     error
		wantAvail   []vo.PaymentMethod
		wantDefault vo.PaymentMethod
	}{
		{
			name:        "enable and reorder",
			updates:     []MethodUpdate{{ID: vo.PaymentMethodBankTransfer, Enabled: ptr(true), Position: ptr(0)}},
			wantAvail:   []vo.PaymentMethod{vo.PaymentMethodBankTransfer, vo.PaymentMethodCOD, vo.PaymentMethodVNPay},
			wantDefault: vo.PaymentMethodCOD,
		},
		{
			name:    "disable all",
			updates: []MethodUpdate{{ID: vo.PaymentMethodCOD, Enabled: ptr(false)}, {ID: vo.PaymentMethodVNPay, Enabled: ptr(false)}},
			wantErr: ErrDefaultRequired,
		},
		{
			name:       "disable all with new default",
			updates:    []MethodUpdate{{ID: vo.PaymentMethodCOD, Enabled: ptr(false)}, {ID: vo.PaymentMethodVNPay, Enabled: ptr(false)}},
			newDefault: ptr(vo.PaymentMethodVNPay),
			wantErr:    ErrDefaultDisabled,
		},
		{
			name:    "disable default without replacement",
			updates: []MethodUpdate{{ID: vo.PaymentMethodCOD, Enabled: ptr(false)}},
			wantErr: ErrDefaultRequired,
		},
		{
			name:        "disable default with replacement",
			updates:     []MethodUpdate{{ID: vo.PaymentMethodCOD, Enabled: ptr(false)}},
			newDefault:  ptr(vo.PaymentMethodVNPay),
			wantAvail:   []vo.PaymentMethod{vo.PaymentMethodVNPay},
			wantDefault: vo.PaymentMethodVNPay,
		},
		{
			name:       "default must be enabled",
			newDefault: ptr(vo.PaymentMethodBankTransfer),
			wantErr:    ErrDefaultDisabled,
		},
		{
			name:    "unknown method",
			updates: []MethodUpdate{{ID: vo.PaymentMethod("momo"), Enabled: ptr(true)}},
			wantErr: ErrMethodNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := seededRegistry()
			before := ids(r.Available())

			err := r.Apply(tt.updates, tt.newDefault, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, ids(r.Available()), "failed command must not change the registry")
				assert.Equal(t, vo.PaymentMethodCOD, r.Default().ID())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvail, ids(r.Available()))
			assert.Equal(t, tt.wantDefault, r.Default().ID())
		})
	}
}

func TestRegistry_ApplyRejectsInvalidFields(t *testing.T) {
	r := seededRegistry()

	assert.Error(t, r.Apply([]MethodUpdate{{ID: vo.PaymentMethodCOD, Name: ptr("  ")}}, nil, now))
	assert.Error(t, r.Apply([]MethodUpdate{{ID: vo.PaymentMethodCOD, Fee: ptr(vo.NewMoneyFromInt(-1))}}, nil, now))
}

func TestRegistry_Toggle(t *testing.T) {
	r := seededRegistry()

	m, err := r.Toggle(vo.PaymentMethodBankTransfer, nil, now)
	require.NoError(t, err)
	assert.True(t, m.IsEnabled())

	m, err = r.Toggle(vo.PaymentMethodBankTransfer, nil, now)
	require.NoError(t, err)
	assert.False(t, m.IsEnabled())

	_, err = r.Toggle(vo.PaymentMethodCOD, nil, now)
	assert.ErrorIs(t, err, ErrDefaultRequired)

	m, err = r.Toggle(vo.PaymentMethodCOD, ptr(vo.PaymentMethodVNPay), now)
	require.NoError(t, err)
	assert.False(t, m.IsEnabled())
	assert.False(t, m.IsDefault())
	assert.Equal(t, vo.PaymentMethodVNPay, r.Default().ID())
}

func TestNewMethod(t *testing.T) {
	m, err := NewMethod(vo.PaymentMethodCOD, "COD", "", vo.Zero(), 1, now)
	require.NoError(t, err)
	assert.True(t, m.IsEnabled())

	_, err = NewMethod("momo", "MoMo", "", vo.Zero(), 1, now)
	assert.Error(t, err)
	_, err = NewMethod(vo.PaymentMethodCOD, "", "", vo.Zero(), 1, now)
	assert.Error(t, err)
}
