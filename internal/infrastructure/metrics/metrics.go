// Package metrics exposes payment counters and HTTP request metrics to
// Prometheus.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vnstore/paycore/internal/domain/order"
)

const namespace = "paycore"

// PaymentMetrics owns its own registry so tests and multiple servers in one
// process do not collide on the global default registry.
type PaymentMetrics struct {
	registry *prometheus.Registry

	settledTotal    *prometheus.CounterVec
	settledAmount   *prometheus.CounterVec
	callbacksTotal  *prometheus.CounterVec
	claimsTotal     *prometheus.CounterVec
	qrRendersTotal  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	notifyFailTotal prometheus.Counter
}

func NewPaymentMetrics() *PaymentMetrics {
	m := &PaymentMetrics{
		registry: prometheus.NewRegistry(),
		settledTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_settled_total",
			Help:      "Orders moved out of pending, by method and final status.",
		}, []string{"method", "status"}),
		settledAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_settled_amount_vnd_total",
			Help:      "Sum of settled order totals in VND, by method and final status.",
		}, []string{"method", "status"}),
		callbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_callbacks_total",
			Help:      "Gateway callbacks received, by source and outcome.",
		}, []string{"source", "outcome"}),
		claimsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bank_claims_total",
			Help:      "Bank transfer claim actions.",
		}, []string{"action"}),
		qrRendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "qr_renders_total",
			Help:      "QR generations, by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		notifyFailTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_notification_failures_total",
			Help:      "Settlement notifications that returned an error.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.settledTotal,
		m.settledAmount,
		m.callbacksTotal,
		m.claimsTotal,
		m.qrRendersTotal,
		m.httpRequests,
		m.httpDuration,
		m.notifyFailTotal,
	)
	return m
}

// NotifyPaymentSettled counts one settlement. It runs alongside the receipt
// notifier and never fails.
func (m *PaymentMetrics) NotifyPaymentSettled(_ context.Context, event *order.PaymentSettledEvent) error {
	labels := []string{event.Method.String(), event.To.String()}
	m.settledTotal.WithLabelValues(labels...).Inc()
	m.settledAmount.WithLabelValues(labels...).Add(event.Amount.Decimal().InexactFloat64())
	return nil
}

func (m *PaymentMetrics) CallbackReceived(source, outcome string) {
	m.callbacksTotal.WithLabelValues(source, outcome).Inc()
}

func (m *PaymentMetrics) ClaimAction(action string) {
	m.claimsTotal.WithLabelValues(action).Inc()
}

func (m *PaymentMetrics) QRRendered(degraded bool) {
	result := "rendered"
	if degraded {
		result = "degraded"
	}
	m.qrRendersTotal.WithLabelValues(result).Inc()
}

func (m *PaymentMetrics) NotificationFailed() {
	m.notifyFailTotal.Inc()
}

func (m *PaymentMetrics) ObserveHTTPRequest(method, endpoint string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *PaymentMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *PaymentMetrics) Registry() *prometheus.Registry {
	return m.registry
}
