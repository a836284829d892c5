package usecases

import (
	"context"
	"net/url"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
	"github.com/vnstore/paycore/internal/domain/order"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
)

type mockGateway struct {
	BuildRedirectFunc  func(ctx context.Context, req paymentgateway.RedirectRequest) (string, error)
	VerifyCallbackFunc func(params url.Values) (*paymentgateway.CallbackData, error)
}

func (m *mockGateway) BuildRedirect(ctx context.Context, req paymentgateway.RedirectRequest) (string, error) {
	if m.BuildRedirectFunc != nil {
		return m.BuildRedirectFunc(ctx, req)
	}
	return "", nil
}

func (m *mockGateway) VerifyCallback(params url.Values) (*paymentgateway.CallbackData, error) {
	if m.VerifyCallbackFunc != nil {
		return m.VerifyCallbackFunc(params)
	}
	return nil, paymentgateway.ErrSignatureInvalid
}

type mockQRGenerator struct {
	GenerateFunc func(ctx context.Context, req paymentgateway.QRRequest) (*paymentgateway.QRResult, error)
}

func (m *mockQRGenerator) Generate(ctx context.Context, req paymentgateway.QRRequest) (*paymentgateway.QRResult, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return &paymentgateway.QRResult{}, nil
}

type mockMethodCache struct {
	GetAvailableFunc func(ctx context.Context) ([]*paymentmethod.Method, error)
	SetAvailableFunc func(ctx context.Context, methods []*paymentmethod.Method) error
	InvalidateFunc   func(ctx context.Context) error
}

func (m *mockMethodCache) GetAvailable(ctx context.Context) ([]*paymentmethod.Method, error) {
	if m.GetAvailableFunc != nil {
		return m.GetAvailableFunc(ctx)
	}
	return nil, nil
}

func (m *mockMethodCache) SetAvailable(ctx context.Context, methods []*paymentmethod.Method) error {
	if m.SetAvailableFunc != nil {
		return m.SetAvailableFunc(ctx, methods)
	}
	return nil
}

func (m *mockMethodCache) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyPaymentSettled(ctx context.Context, event *order.PaymentSettledEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// recordingMetrics counts calls so tests can assert on side effects.
type recordingMetrics struct {
	mu                  sync.Mutex
	callbacks           map[string]int
	claimActions        map[string]int
	qrDegraded          int
	qrRendered          int
	notificationFailure int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		callbacks:    map[string]int{},
		claimActions: map[string]int{},
	}
}

func (m *recordingMetrics) CallbackReceived(source, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks[source+":"+outcome]++
}

func (m *recordingMetrics) ClaimAction(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.claimActions[action]++
}

func (m *recordingMetrics) QRRendered(degraded bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.qrRendered++
	if degraded {
		m.qrDegraded++
	}
}

func (m *recordingMetrics) NotificationFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationFailure++
}
