package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

func TestPaymentMetrics_Settlement(t *testing.T) {
	m := NewPaymentMetrics()

	event := &order.PaymentSettledEvent{
		Method: vo.PaymentMethodVNPay,
		To:     vo.PaymentStatusPaid,
		Amount: vo.NewMoneyFromInt(30000),
	}
	require.NoError(t, m.NotifyPaymentSettled(context.Background(), event))
	require.NoError(t, m.NotifyPaymentSettled(context.Background(), event))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.settledTotal.WithLabelValues("vnpay", "paid")))
	assert.Equal(t, 60000.0, testutil.ToFloat64(m.settledAmount.WithLabelValues("vnpay", "paid")))
}

func TestPaymentMetrics_Counters(t *testing.T) {
	m := NewPaymentMetrics()

	m.CallbackReceived("ipn", "signature_invalid")
	m.ClaimAction("submitted")
	m.ClaimAction("submitted")
	m.QRRendered(true)
	m.NotificationFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.callbacksTotal.WithLabelValues("ipn", "signature_invalid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.claimsTotal.WithLabelValues("submitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.qrRendersTotal.WithLabelValues("degraded")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.qrRendersTotal.WithLabelValues("rendered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifyFailTotal))
}

func TestPaymentMetrics_Handler(t *testing.T) {
	m := NewPaymentMetrics()
	m.ObserveHTTPRequest(http.MethodGet, "/payment-methods", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `paycore_http_requests_total{endpoint="/payment-methods",method="GET",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
