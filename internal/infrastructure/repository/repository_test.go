package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/discount"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
	"github.com/vnstore/paycore/internal/shared/db"
	"github.com/vnstore/paycore/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return gdb
}

func createTestOrder(t *testing.T, repo *OrderRepository, method vo.PaymentMethod) *order.Order {
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
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

func testDetails() banktransfer.BankDetails {
	return banktransfer.BankDetails{
		BankName:      "Vietcombank",
		BankCode:      "970436",
		AccountNumber: "0123456789",
		AccountName:   "PAYCORE STORE",
	}
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	o := createTestOrder(t, repo, vo.PaymentMethodVNPay)
	require.NotZero(t, o.ID())

	found, err := repo.GetByID(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.OrderCode(), found.OrderCode())
	assert.True(t, found.TotalAmount().Equals(vo.NewMoneyFromInt(30000)))
	assert.True(t, found.Subtotal().Equals(vo.NewMoneyFromInt(30000)))
	assert.Equal(t, vo.PaymentStatusPending, found.PaymentStatus())
	require.Len(t, found.Items(), 1)
	assert.Equal(t, "SKU-1", found.Items()[0].SKU)
	assert.True(t, found.Items()[0].UnitPrice.Equals(vo.NewMoneyFromInt(15000)))

	byCode, err := repo.GetByCode(ctx, o.OrderCode())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), byCode.ID())

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestOrderRepository_UpdatePaymentStatusIsCompareAndSet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewOrderRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	o := createTestOrder(t, repo, vo.PaymentMethodVNPay)
	now := time.Now().UTC()

	paid, err := order.Transition(o, vo.PaymentEventGatewaySuccess, "", now)
	require.NoError(t, err)
	failed, err := order.Transition(o, vo.PaymentEventGatewayFailure, "customer cancelled the transaction", now)
	require.NoError(t, err)

	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		locked, err := repo.GetByIDForUpdate(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.PaymentStatusPending, locked.PaymentStatus())
		return repo.UpdatePaymentStatus(ctx, paid, vo.PaymentStatusPending)
	})
	require.NoError(t, err)

	// a writer that read the same pending state loses
	err = repo.UpdatePaymentStatus(ctx, failed, vo.PaymentStatusPending)
	assert.ErrorIs(t, err, order.ErrAlreadyFinalized)

	stored, err := repo.GetByID(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.PaymentStatusPaid, stored.PaymentStatus())
	assert.Equal(t, 2, stored.Version())
	assert.NotNil(t, stored.FinalizedAt())
	assert.Nil(t, stored.FailureReason())
}

func TestCallbackLogRepository(t *testing.T) {
	gdb := setupTestDB(t)
	orders := NewOrderRepository(gdb)
	repo := NewCallbackLogRepository(gdb)
	ctx := context.Background()

	o := createTestOrder(t, orders, vo.PaymentMethodVNPay)
	orderID := o.ID()

	require.NoError(t, repo.Create(ctx, &order.CallbackLog{
		Source:         order.CallbackSourceIPN,
		OrderID:        &orderID,
		TxnRef:         "1-" + o.OrderCode(),
		ResponseCode:   "00",
		SignatureValid: true,
		Outcome:        order.CallbackOutcomeApplied,
		RawParams:      map[string]string{"vnp_ResponseCode": "00"},
		CreatedAt:      time.Now().UTC(),
	}))
	require.NoError(t, repo.Create(ctx, &order.CallbackLog{
		Source:    order.CallbackSourceIPN,
		Outcome:   order.CallbackOutcomeSignatureInvalid,
		RawParams: map[string]string{},
		CreatedAt: time.Now().UTC(),
	}))

	logs, err := repo.ListByOrderID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "00", logs[0].RawParams["vnp_ResponseCode"])
	assert.True(t, logs[0].SignatureValid)
}

func TestBankTransferClaimRepository_OnePendingClaimPerOrder(t *testing.T) {
	gdb := setupTestDB(t)
	orders := NewOrderRepository(gdb)
	repo := NewBankTransferClaimRepository(gdb)
	ctx := context.Background()

	o := createTestOrder(t, orders, vo.PaymentMethodBankTransfer)
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	first, err := banktransfer.NewClaim(o.ID(), testDetails(), "FT2412345", vo.NewMoneyFromInt(30000), now)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := banktransfer.NewClaim(o.ID(), testDetails(), "FT2499999", vo.NewMoneyFromInt(30000), now)
	require.NoError(t, err)
	err = repo.Create(ctx, second)
	assert.True(t, errors.IsConflictError(err))

	pending, err := repo.GetPendingByOrderID(ctx, o.ID())
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, first.ID(), pending.ID())

	stale, err := repo.GetPendingByOrderIDForUpdate(ctx, o.ID())
	require.NoError(t, err)
	require.NotNil(t, stale)

	require.NoError(t, pending.Reject("no matching transfer", 7, now.Add(time.Hour)))
	require.NoError(t, repo.Update(ctx, pending, banktransfer.ClaimStatusPending))

	// a copy read before the rejection cannot overwrite it
	require.NoError(t, stale.Resubmit(testDetails(), "FT2400000", vo.NewMoneyFromInt(30000), now.Add(2*time.Hour)))
	assert.ErrorIs(t, repo.Update(ctx, stale, banktransfer.ClaimStatusPending), banktransfer.ErrAlreadyDecided)

	none, err := repo.GetPendingByOrderID(ctx, o.ID())
	require.NoError(t, err)
	assert.Nil(t, none)

	// a rejected claim frees the slot for a new submission
	require.NoError(t, repo.Create(ctx, second))

	history, err := repo.ListByOrderID(ctx, o.ID())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, banktransfer.ClaimStatusFailed, history[0].Status())
	require.NotNil(t, history[0].VerifierID())
	assert.Equal(t, uint(7), *history[0].VerifierID())
	assert.Equal(t, "no matching transfer", *history[0].Note())
}

func TestBankTransferClaimRepository_Queues(t *testing.T) {
	gdb := setupTestDB(t)
	orders := NewOrderRepository(gdb)
	repo := NewBankTransferClaimRepository(gdb)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 3; i++ {
		o := createTestOrder(t, orders, vo.PaymentMethodBankTransfer)
		// submitted newest first to check queue ordering
		c, err := banktransfer.NewClaim(o.ID(), testDetails(), "FT"+o.OrderCode(), vo.NewMoneyFromInt(30000), base.Add(time.Duration(3-i)*time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, c))
		ids = append(ids, c.ID())
	}

	page, total, err := repo.ListByStatus(ctx, banktransfer.ClaimStatusPending, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID())
	assert.Equal(t, ids[1], page[1].ID())

	stale, err := repo.ListPendingSubmittedBefore(ctx, base.Add(150*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.Equal(t, ids[2], stale[0].ID())

	tm := db.NewTransactionManager(gdb)
	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		c, err := repo.GetByIDForUpdate(ctx, ids[0])
		require.NoError(t, err)
		require.NoError(t, c.Verify("matched statement", 3, base.Add(5*time.Hour)))
		return repo.Update(ctx, c, banktransfer.ClaimStatusPending)
	})
	require.NoError(t, err)

	verified, total, err := repo.ListByStatus(ctx, banktransfer.ClaimStatusVerified, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, ids[0], verified[0].ID())

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestBankAccountRepository(t *testing.T) {
	repo := NewBankAccountRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	vcb, err := banktransfer.NewBankAccount("Vietcombank", "970436", "0123456789", "paycore store", "HCM", "", now)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, vcb))

	dup, _ := banktransfer.NewBankAccount("Vietcombank", "970436", "0123456789", "paycore store", "", "", now)
	assert.True(t, errors.IsConflictError(repo.Create(ctx, dup)))

	tcb, err := banktransfer.NewBankAccount("Techcombank", "970407", "1903000000", "paycore store", "", "https://cdn.example/tcb.png", now)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tcb))

	tcb.Deactivate(now)
	require.NoError(t, repo.Update(ctx, tcb))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "PAYCORE STORE", active[0].AccountName())

	found, err := repo.GetByAccountNumber(ctx, "970407", "1903000000")
	require.NoError(t, err)
	assert.False(t, found.IsActive())
	assert.Equal(t, "https://cdn.example/tcb.png", found.QRImageRef())
}

func TestPaymentMethodRepository_SaveAllUpserts(t *testing.T) {
	repo := NewPaymentMethodRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	cod, err := paymentmethod.NewMethod(vo.PaymentMethodCOD, "Cash on delivery", "", vo.Zero(), 2, now)
	require.NoError(t, err)
	vnpay, err := paymentmethod.NewMethod(vo.PaymentMethodVNPay, "VNPAY", "Cards and QR", vo.NewMoneyFromInt(2000), 1, now)
	require.NoError(t, err)

	registry := paymentmethod.NewRegistry([]*paymentmethod.Method{cod, vnpay})
	codID := vo.PaymentMethodCOD
	require.NoError(t, registry.Apply(nil, &codID, now))
	require.NoError(t, repo.SaveAll(ctx, registry.All()))

	methods, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, vo.PaymentMethodVNPay, methods[0].ID())
	assert.True(t, methods[0].Fee().Equals(vo.NewMoneyFromInt(2000)))
	assert.True(t, methods[1].IsDefault())

	disabled := false
	require.NoError(t, registry.Apply([]paymentmethod.MethodUpdate{{ID: vo.PaymentMethodVNPay, Enabled: &disabled}}, nil, now))
	require.NoError(t, repo.SaveAll(ctx, registry.All()))

	locked, err := repo.ListAllForUpdate(ctx)
	require.NoError(t, err)
	require.Len(t, locked, 2)
	assert.False(t, locked[0].IsEnabled())
}

func TestDiscountRepository_UsageLimit(t *testing.T) {
	repo := NewDiscountRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	limit := 1
	code, err := discount.NewCode(discount.NewCodeParams{
		Code:        "tet2025",
		Kind:        discount.KindPercent,
		Value:       decimal.NewFromInt(10),
		MinSubtotal: vo.Zero(),
		UsageLimit:  &limit,
	}, now)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, code))

	found, err := repo.GetByCode(ctx, " Tet2025 ")
	require.NoError(t, err)
	assert.Equal(t, code.ID(), found.ID())
	assert.Equal(t, discount.KindPercent, found.Kind())

	require.NoError(t, repo.IncrementUsage(ctx, code.ID()))
	assert.ErrorIs(t, repo.IncrementUsage(ctx, code.ID()), discount.ErrUsageLimitReached)

	red := &discount.Redemption{CodeID: code.ID(), OrderID: 42, Amount: vo.NewMoneyFromInt(3000), RedeemedAt: now}
	require.NoError(t, repo.CreateRedemption(ctx, red))
	assert.ErrorIs(t, repo.CreateRedemption(ctx, red), discount.ErrAlreadyRedeemed)

	_, err = repo.GetByCode(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))
}
