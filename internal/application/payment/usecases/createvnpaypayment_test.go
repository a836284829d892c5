package usecases

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCreateVNPayPayment(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOrder(t, vo.PaymentMethodVNPay)

	uc := NewCreateVNPayPaymentUseCase(env.orders, newScenarioGateway(t), env.log)
	res, err := uc.Execute(context.Background(), CreateVNPayPaymentCommand{
		OrderID:   o.ID(),
		OrderInfo: "Thanh toan don hang",
		Amount:    int64Ptr(30000),
		ClientIP:  "203.0.113.5",
	})
	require.NoError(t, err)

	assert.Equal(t, "00", res.Code)
	assert.Equal(t, o.ID(), res.OrderID)
	u, err := url.Parse(res.PaymentURL)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "3000000", q.Get("vnp_Amount"))
	assert.Equal(t, "203.0.113.5", q.Get("vnp_IpAddr"))
	assert.NotEmpty(t, q.Get("vnp_SecureHash"))

	// building the redirect never touches the order
	assert.Equal(t, vo.PaymentStatusPending, env.status(t, o.ID()))
}

func TestCreateVNPayPayment_Rejections(t *testing.T) {
	env := newTestEnv(t)
	gw := &mockGateway{BuildRedirectFunc: func(context.Context, paymentgateway.RedirectRequest) (string, error) {
		return "https://pay.example", nil
	}}
	uc := NewCreateVNPayPaymentUseCase(env.orders, gw, env.log)
	ctx := context.Background()

	codOrder := env.createOrder(t, vo.PaymentMethodCOD)
	_, err := uc.Execute(ctx, CreateVNPayPaymentCommand{OrderID: codOrder.ID()})
	assert.True(t, apperrors.IsValidationError(err))

	vnpayOrder := env.createOrder(t, vo.PaymentMethodVNPay)
	_, err = uc.Execute(ctx, CreateVNPayPaymentCommand{OrderID: vnpayOrder.ID(), Amount: int64Ptr(29999)})
	assert.True(t, apperrors.IsAmountMismatchError(err))

	_, err = uc.Execute(ctx, CreateVNPayPaymentCommand{OrderID: 404})
	assert.True(t, apperrors.IsNotFoundError(err))

	env.expectNotifications(1)
	_, err = env.settlement.Settle(ctx, SettleCommand{OrderID: vnpayOrder.ID(), Event: vo.PaymentEventGatewaySuccess})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, CreateVNPayPaymentCommand{OrderID: vnpayOrder.ID()})
	assert.True(t, apperrors.IsAlreadyFinalizedError(err))
}

func TestCreateVNPayPayment_GatewayError(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOrder(t, vo.PaymentMethodVNPay)
	gw := &mockGateway{BuildRedirectFunc: func(context.Context, paymentgateway.RedirectRequest) (string, error) {
		return "", errors.New("amount out of range")
	}}

	_, err := NewCreateVNPayPaymentUseCase(env.orders, gw, env.log).Execute(context.Background(), CreateVNPayPaymentCommand{OrderID: o.ID()})
	assert.True(t, apperrors.IsGatewayUnavailableError(err))
}
