package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/infrastructure/repository"
	"github.com/vnstore/paycore/internal/shared/db"
	"github.com/vnstore/paycore/internal/shared/logger"
)

var testNow = time.Date(2024, 5, 1, 3, 30, 0, 0, time.UTC)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testEnv wires the real gorm repositories to an in-memory database.
type testEnv struct {
	db           *gorm.DB
	orders       *repository.OrderRepository
	claims       *repository.BankTransferClaimRepository
	accounts     *repository.BankAccountRepository
	methods      *repository.PaymentMethodRepository
	discounts    *repository.DiscountRepository
	callbackLogs *repository.CallbackLogRepository
	txMgr        *db.TransactionManager
	metrics      *recordingMetrics
	notifier     *mockNotifier
	settlement   *SettlementService
	log          logger.Interface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(
		&models.OrderModel{},
		&models.PaymentCallbackLogModel{},
		&models.BankTransferClaimModel{},
		&models.BankAccountModel{},
		&models.PaymentMethodModel{},
		&models.DiscountCodeModel{},
		&models.DiscountRedemptionModel{},
	))

	env := &testEnv{
		db:           gdb,
		orders:       repository.NewOrderRepository(gdb),
		claims:       repository.NewBankTransferClaimRepository(gdb),
		accounts:     repository.NewBankAccountRepository(gdb),
		methods:      repository.NewPaymentMethodRepository(gdb),
		discounts:    repository.NewDiscountRepository(gdb),
		callbackLogs: repository.NewCallbackLogRepository(gdb),
		txMgr:        db.NewTransactionManager(gdb),
		metrics:      newRecordingMetrics(),
		notifier:     new(mockNotifier),
		log:          testLogger(),
	}

	env.settlement = NewSettlementService(env.orders, env.claims, env.txMgr, env.log)
	env.settlement.SetMetrics(env.metrics)
	env.settlement.AddNotifier(env.notifier)
	env.settlement.now = func() time.Time { return testNow }
	// run notifications inline so call counts are deterministic
	env.settlement.dispatch = func(_ string, fn func(ctx context.Context)) {
		fn(context.Background())
	}

	env.seedMethods(t)
	return env
}

func (e *testEnv) seedMethods(t *testing.T) {
	t.Helper()
	require.NoError(t, e.methods.SaveAll(context.Background(), []*paymentmethod.Method{
		paymentmethod.ReconstructMethod(vo.PaymentMethodCOD, "Thanh toan khi nhan hang", "", true, vo.Zero(), 1, true, testNow),
		paymentmethod.ReconstructMethod(vo.PaymentMethodBankTransfer, "Chuyen khoan", "", true, vo.Zero(), 2, false, testNow),
		paymentmethod.ReconstructMethod(vo.PaymentMethodVNPay, "VNPAY", "", true, vo.Zero(), 3, false, testNow),
	}))
}

// createOrder persists a pending order totalling 30000 VND
// (2 x 15000 + 10000 shipping - 10000 discount).
func (e *testEnv) createOrder(t *testing.T, method vo.PaymentMethod) *order.Order {
	t.Helper()
	item, err := vo.NewLineItem("SKU-1", "Ca phe sua da", vo.NewMoneyFromInt(15000), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(order.NewOrderParams{
		Items:          []vo.LineItem{item},
		ShippingFee:    vo.NewMoneyFromInt(10000),
		DiscountAmount: vo.NewMoneyFromInt(10000),
		PaymentMethod:  method,
		CustomerName:   "Nguyen Van A",
		CustomerEmail:  "a@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, e.orders.Create(context.Background(), o))
	return o
}

func (e *testEnv) createBankAccount(t *testing.T) *banktransfer.BankAccount {
	t.Helper()
	a, err := banktransfer.NewBankAccount("Vietcombank", "970436", "0123456789", "PAYCORE STORE", "Ha Noi", "https://cdn.example/qr/vcb.png", testNow)
	require.NoError(t, err)
	require.NoError(t, e.accounts.Create(context.Background(), a))
	return a
}

func (e *testEnv) expectNotifications(times int) {
	e.notifier.On("NotifyPaymentSettled", mock.Anything, mock.Anything).Return(nil).Times(times)
}

func (e *testEnv) status(t *testing.T, orderID uint) vo.PaymentStatus {
	t.Helper()
	o, err := e.orders.GetByID(context.Background(), orderID)
	require.NoError(t, err)
	return o.PaymentStatus()
}
