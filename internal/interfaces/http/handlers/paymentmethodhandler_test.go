package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/interfaces/http/handlers/testutil"
	"github.com/vnstore/paycore/internal/shared/authorization"
	"github.com/vnstore/paycore/internal/shared/errors"
)

type methodMocks struct {
	available *mockListMethodsUC
	all       *mockListMethodsUC
	update    *mockUpdateMethodsUC
	toggle    *mockToggleMethodUC
}

func newTestPaymentMethodHandler() (*PaymentMethodHandler, *methodMocks) {
	m := &methodMocks{
		available: &mockListMethodsUC{},
		all:       &mockListMethodsUC{},
		update:    &mockUpdateMethodsUC{},
		toggle:    &mockToggleMethodUC{},
	}
	return NewPaymentMethodHandler(m.available, m.all, m.update, m.toggle, testutil.NewMockLogger()), m
}

func TestPaymentMethodHandler_List(t *testing.T) {
	h, m := newTestPaymentMethodHandler()
	m.available.result = []*dto.PaymentMethodDTO{{ID: "cod", Enabled: true, IsDefault: true}}
	m.all.err = errors.NewInternalError("database unavailable")

	c, w := testutil.NewTestContext(http.MethodGet, "/payment-methods", nil)
	h.ListAvailable(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/admin/payment-methods", nil)
	h.ListAll(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPaymentMethodHandler_Update(t *testing.T) {
	t.Run("maps changes", func(t *testing.T) {
		h, m := newTestPaymentMethodHandler()
		m.update.result = []*dto.PaymentMethodDTO{{ID: "vnpay"}}

		c, w := testutil.NewTestContext(http.MethodPut, "/admin/payment-methods", map[string]interface{}{
			"methods": []map[string]interface{}{
				{"id": "vnpay", "enabled": false},
				{"id": "cod", "fee": 15000, "position": 1},
			},
			"default": "cod",
		})
		testutil.SetStaffContext(c, 1, authorization.RoleAdmin)
		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, m.update.cmd.Changes, 2)

		vnpayChange := m.update.cmd.Changes[0]
		assert.Equal(t, "vnpay", vnpayChange.ID)
		require.NotNil(t, vnpayChange.Enabled)
		assert.False(t, *vnpayChange.Enabled)
		assert.Nil(t, vnpayChange.Fee)

		codChange := m.update.cmd.Changes[1]
		require.NotNil(t, codChange.Fee)
		assert.Equal(t, int64(15000), *codChange.Fee)
		require.NotNil(t, codChange.Position)
		assert.Equal(t, 1, *codChange.Position)
		assert.Nil(t, codChange.Enabled)

		require.NotNil(t, m.update.cmd.Default)
		assert.Equal(t, "cod", *m.update.cmd.Default)
		assert.Equal(t, uint(1), m.update.cmd.StaffID)
	})

	t.Run("negative fee", func(t *testing.T) {
		h, _ := newTestPaymentMethodHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/admin/payment-methods", map[string]interface{}{
			"methods": []map[string]interface{}{{"id": "cod", "fee": -1}},
		})
		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invariant violated", func(t *testing.T) {
		h, m := newTestPaymentMethodHandler()
		m.update.err = errors.NewValidationError("at least one payment method must remain enabled")

		c, w := testutil.NewTestContext(http.MethodPut, "/admin/payment-methods", map[string]interface{}{
			"methods": []map[string]interface{}{{"id": "cod", "enabled": false}},
		})
		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentMethodHandler_Toggle(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		h, m := newTestPaymentMethodHandler()
		m.toggle.result = &dto.PaymentMethodDTO{ID: "vnpay"}

		c, w := testutil.NewTestContext(http.MethodPut, "/admin/payment-methods/vnpay/toggle", nil)
		testutil.SetURLParam(c, "id", "vnpay")
		h.Toggle(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "vnpay", m.toggle.cmd.ID)
		assert.Nil(t, m.toggle.cmd.NewDefault)
	})

	t.Run("new default", func(t *testing.T) {
		h, m := newTestPaymentMethodHandler()
		m.toggle.result = &dto.PaymentMethodDTO{ID: "cod"}

		c, w := testutil.NewTestContext(http.MethodPut, "/admin/payment-methods/cod/toggle", map[string]string{"new_default": "bank_transfer"})
		testutil.SetURLParam(c, "id", "cod")
		h.Toggle(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, m.toggle.cmd.NewDefault)
		assert.Equal(t, "bank_transfer", *m.toggle.cmd.NewDefault)
	})

	t.Run("default without replacement", func(t *testing.T) {
		h, m := newTestPaymentMethodHandler()
		m.toggle.err = errors.NewValidationError("disabling the default method requires a new default")

		c, w := testutil.NewTestContext(http.MethodPut, "/admin/payment-methods/cod/toggle", nil)
		testutil.SetURLParam(c, "id", "cod")
		h.Toggle(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
