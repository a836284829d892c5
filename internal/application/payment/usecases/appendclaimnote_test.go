package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
)

func TestAppendClaimNote_OnDecidedClaim(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o := env.createOrder(t, vo.PaymentMethodBankTransfer)
	env.expectNotifications(1)
	claimID := submitTestClaim(t, env, o.ID(), 30000)

	reject := NewRejectClaimUseCase(env.claims, env.settlement, env.log)
	_, err := reject.Execute(ctx, DecideClaimCommand{ClaimID: claimID, Note: "no matching transfer", VerifierID: 3})
	require.NoError(t, err)

	uc := NewAppendClaimNoteUseCase(env.claims, env.txMgr, env.log)
	uc.now = func() time.Time { return testNow.Add(time.Hour) }

	res, err := uc.Execute(ctx, AppendClaimNoteCommand{ClaimID: claimID, Note: "  customer sent statement, refund started ", StaffID: 4})
	require.NoError(t, err)
	assert.Equal(t, "failed", res.Status)
	require.NotNil(t, res.Note)
	assert.Equal(t, "no matching transfer\ncustomer sent statement, refund started", *res.Note)

	stored, err := env.claims.GetByID(ctx, claimID)
	require.NoError(t, err)
	assert.Equal(t, banktransfer.ClaimStatusFailed, stored.Status())
	require.NotNil(t, stored.VerifierID())
	assert.Equal(t, uint(3), *stored.VerifierID())
	assert.Equal(t, *res.Note, *stored.Note())
	assert.Equal(t, vo.PaymentStatusFailed, env.status(t, o.ID()))
}

func TestAppendClaimNote_Rejections(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOrder(t, vo.PaymentMethodBankTransfer)
	claimID := submitTestClaim(t, env, o.ID(), 30000)
	uc := NewAppendClaimNoteUseCase(env.claims, env.txMgr, env.log)

	_, err := uc.Execute(context.Background(), AppendClaimNoteCommand{ClaimID: claimID, Note: "   "})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AppendClaimNoteCommand{ClaimID: claimID, Note: strings.Repeat("x", maxClaimNoteLength+1)})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AppendClaimNoteCommand{ClaimID: 999, Note: "hello"})
	assert.True(t, apperrors.IsNotFoundError(err))

	// a pending claim can be annotated and stays in the queue
	res, err := uc.Execute(context.Background(), AppendClaimNoteCommand{ClaimID: claimID, Note: "called the customer"})
	require.NoError(t, err)
	assert.Equal(t, "pending", res.Status)
}

func TestListCallbackLogs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o := env.createOrder(t, vo.PaymentMethodVNPay)
	env.expectNotifications(1)
	callbacks := newCallbackUseCase(t, env)
	params := gatewayCallback(t, o, 30000, "00")

	callbacks.Execute(ctx, HandleVNPayCallbackCommand{Source: order.CallbackSourceReturn, Params: params, ClientIP: "203.0.113.5"})
	callbacks.Execute(ctx, HandleVNPayCallbackCommand{Source: order.CallbackSourceIPN, Params: params, ClientIP: "113.160.92.202"})

	uc := NewListCallbackLogsUseCase(env.orders, env.callbackLogs, env.log)
	logs, err := uc.Execute(ctx, o.ID())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, order.CallbackOutcomeApplied, logs[0].Outcome)
	assert.Equal(t, order.CallbackOutcomeDuplicate, logs[1].Outcome)
	assert.Equal(t, "113.160.92.202", logs[1].ClientIP)
	assert.NotContains(t, logs[0].RawParams, "vnp_SecureHash")

	_, err = uc.Execute(ctx, 404)
	assert.True(t, apperrors.IsNotFoundError(err))
}
