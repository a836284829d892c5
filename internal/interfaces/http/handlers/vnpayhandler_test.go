package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/application/payment/usecases"
	"github.com/vnstore/paycore/internal/domain/order"
	"github.com/vnstore/paycore/internal/infrastructure/payment/vnpay"
	"github.com/vnstore/paycore/internal/interfaces/http/handlers/testutil"
	"github.com/vnstore/paycore/internal/shared/errors"
)

func newTestVNPayHandler() (*VNPayHandler, *mockCreateVNPayPaymentUC, *mockHandleVNPayCallbackUC) {
	create := &mockCreateVNPayPaymentUC{}
	callback := &mockHandleVNPayCallbackUC{}
	return NewVNPayHandler(create, callback, testutil.NewMockLogger()), create, callback
}

func TestVNPayHandler_CreatePayment(t *testing.T) {
	t.Run("returns redirect url", func(t *testing.T) {
		h, create, _ := newTestVNPayHandler()
		create.result = &dto.VNPayPaymentDTO{Code: "00", PaymentURL: "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_Amount=53000000", OrderID: 12}

		c, w := testutil.NewRawTestContext(http.MethodPost, "/vnpay/create-payment", `{"orderId":12,"orderInfo":"Thanh toan don hang","amount":530000}`)
		c.Request.RemoteAddr = "203.0.113.7:51234"
		h.CreatePayment(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(12), create.cmd.OrderID)
		require.NotNil(t, create.cmd.Amount)
		assert.Equal(t, int64(530000), *create.cmd.Amount)
		assert.Equal(t, "203.0.113.7", create.cmd.ClientIP)
	})

	tests := []struct {
		name string
		body string
	}{
		{"unknown field", `{"orderId":12,"vnp_SecureHash":"abc"}`},
		{"missing order", `{"orderInfo":"x"}`},
		{"bad return url", `{"orderId":12,"returnUrl":"not a url"}`},
		{"trailing data", `{"orderId":12}{"orderId":13}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, create, _ := newTestVNPayHandler()

			c, w := testutil.NewRawTestContext(http.MethodPost, "/vnpay/create-payment", tt.body)
			h.CreatePayment(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, create.called)
		})
	}

	t.Run("gateway down", func(t *testing.T) {
		h, create, _ := newTestVNPayHandler()
		create.err = errors.NewGatewayUnavailableError("payment gateway is not configured")

		c, w := testutil.NewRawTestContext(http.MethodPost, "/vnpay/create-payment", `{"orderId":12}`)
		h.CreatePayment(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestVNPayHandler_IPN(t *testing.T) {
	tests := []struct {
		outcome string
		rspCode string
	}{
		{order.CallbackOutcomeApplied, vnpay.IPNConfirmed},
		{order.CallbackOutcomeDuplicate, vnpay.IPNAlreadyConfirmed},
		{order.CallbackOutcomeOrderNotFound, vnpay.IPNOrderNotFound},
		{order.CallbackOutcomeAmountMismatch, vnpay.IPNInvalidAmount},
		{order.CallbackOutcomeSignatureInvalid, vnpay.IPNInvalidSignature},
		{order.CallbackOutcomeMalformed, vnpay.IPNUnknownError},
		{order.CallbackOutcomeProcessingFailure, vnpay.IPNUnknownError},
	}
	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			h, _, callback := newTestVNPayHandler()
			callback.result = &usecases.VNPayCallbackResult{Outcome: tt.outcome}

			c, w := testutil.NewTestContext(http.MethodGet, "/vnpay/ipn?vnp_TxnRef=12&vnp_ResponseCode=00", nil)
			h.IPN(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, order.CallbackSourceIPN, callback.cmd.Source)
			assert.Equal(t, "12", callback.cmd.Params.Get("vnp_TxnRef"))

			var resp vnpay.IPNResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.rspCode, resp.RspCode)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestVNPayHandler_PaymentReturn(t *testing.T) {
	tests := []struct {
		name       string
		result      *usecases.VNPayCallbackResult
		wantStatus  int
		wantMessage string
		wantOrderID uint
	}{
		{
			name:       "paid",
			result:      &usecases.VNPayCallbackResult{Outcome: order.CallbackOutcomeApplied, OrderID: 12, Success: true, Message: "payment successful"},
			wantStatus:  http.StatusOK,
			wantMessage: "payment successful",
			wantOrderID: 12,
		},
		{
			name:       "declined by customer",
			result:      &usecases.VNPayCallbackResult{Outcome: order.CallbackOutcomeApplied, OrderID: 12, Message: "payment failed"},
			wantStatus:  http.StatusOK,
			wantMessage: "payment failed",
			wantOrderID: 12,
		},
		{
			name:       "tampered",
			result:      &usecases.VNPayCallbackResult{Outcome: order.CallbackOutcomeSignatureInvalid, Message: "invalid signature"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: returnFailureMessage,
		},
		{
			name:       "malformed",
			result:      &usecases.VNPayCallbackResult{Outcome: order.CallbackOutcomeMalformed, Message: "invalid callback"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: returnFailureMessage,
		},
		{
			name:        "unknown order",
			result:      &usecases.VNPayCallbackResult{Outcome: order.CallbackOutcomeOrderNotFound, Message: "order not found"},
			wantStatus:  http.StatusOK,
			wantMessage: returnFailureMessage,
		},
		{
			name:        "settlement error",
			result:      &usecases.VNPayCallbackResult{Outcome: order.CallbackOutcomeProcessingFailure, OrderID: 12, Message: "processing failed"},
			wantStatus:  http.StatusOK,
			wantMessage: returnFailureMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, callback := newTestVNPayHandler()
			callback.result = tt.result

			c, w := testutil.NewTestContext(http.MethodGet, "/vnpay/payment-return?vnp_TxnRef=12", nil)
			h.PaymentReturn(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, order.CallbackSourceReturn, callback.cmd.Source)

			var resp dto.CallbackResultDTO
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.result.Success, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantOrderID, resp.OrderID)
			assert.NotContains(t, w.Body.String(), "order not found")
			assert.NotContains(t, w.Body.String(), "signature")
		})
	}
}
