package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/shared/biztime"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/goroutine"
	"github.com/vnstore/paycore/internal/shared/logger"
)

const defaultNotifyTimeout = 30 * time.Second

// SettleCommand asks the settlement service to apply one event to an order.
type SettleCommand struct {
	OrderID uint
	Event   vo.PaymentEvent
	// Reason is recorded on failure and cancellation outcomes.
	Reason string
	// Apply runs inside the settlement transaction after the transition has
	// been accepted and before it is persisted. Returning an error rolls the
	// whole settlement back.
	Apply func(ctx context.Context, before, after *order.Order) error
}

type SettleResult struct {
	Order *order.Order
	// Changed is true only for the call that moved the order out of PENDING.
	Changed bool
}

// SettlementService is the only writer of order payment status. Each call
// locks the order row, applies the state machine and persists with a
// compare-and-set on the previous status, all in one transaction.
type SettlementService struct {
	orderRepo     order.Repository
	claimRepo     banktransfer.ClaimRepository
	txMgr         TransactionManager
	notifiers     []PaymentNotifier
	metrics       PaymentMetrics
	notifyTimeout time.Duration
	now           func() time.Time
	dispatch      func(name string, fn func(ctx context.Context))
	logger        logger.Interface
}

func NewSettlementService(
	orderRepo order.Repository,
	claimRepo banktransfer.ClaimRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *SettlementService {
	s := &SettlementService{
		orderRepo:     orderRepo,
		claimRepo:     claimRepo,
		txMgr:         txMgr,
		metrics:       noopMetrics{},
		notifyTimeout: defaultNotifyTimeout,
		now:           biztime.NowUTC,
		logger:        logger,
	}
	s.dispatch = func(name string, fn func(ctx context.Context)) {
		goroutine.SafeGoWithTimeout(s.logger, name, s.notifyTimeout, fn)
	}
	return s
}

// AddNotifier registers a collaborator told about every settlement.
func (s *SettlementService) AddNotifier(n PaymentNotifier) {
	s.notifiers = append(s.notifiers, n)
}

func (s *SettlementService) SetMetrics(m PaymentMetrics) {
	if m != nil {
		s.metrics = m
	}
}

// Settle applies cmd.Event. A terminal order is not an error: the result
// carries the stored order with Changed false. Unknown transitions are
// validation errors.
func (s *SettlementService) Settle(ctx context.Context, cmd SettleCommand) (*SettleResult, error) {
	var (
		before  *order.Order
		after   *order.Order
		changed bool
	)

	err := s.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.orderRepo.GetByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return err
		}

		next, err := order.Transition(current, cmd.Event, cmd.Reason, s.now())
		if errors.Is(err, order.ErrAlreadyFinalized) {
			after = current
			return nil
		}
		if err != nil {
			return apperrors.NewValidationError("payment event not allowed", err.Error())
		}

		if cmd.Apply != nil {
			if err := cmd.Apply(ctx, current, next); err != nil {
				return err
			}
		}

		if err := s.orderRepo.UpdatePaymentStatus(ctx, next, current.PaymentStatus()); err != nil {
			return err
		}

		if !cmd.Event.IsClaimDecision() {
			if err := s.supersedePendingClaim(ctx, next); err != nil {
				return err
			}
		}

		before, after, changed = current, next, true
		return nil
	})

	if errors.Is(err, order.ErrAlreadyFinalized) {
		// another writer won the compare-and-set; report its result
		current, getErr := s.orderRepo.GetByID(ctx, cmd.OrderID)
		if getErr != nil {
			return nil, getErr
		}
		s.logger.Infow("settlement lost race, order already finalized",
			"order_id", cmd.OrderID,
			"event", cmd.Event,
			"status", current.PaymentStatus(),
		)
		return &SettleResult{Order: current}, nil
	}
	if err != nil {
		return nil, err
	}

	if !changed {
		s.logger.Debugw("order already finalized, event ignored",
			"order_id", cmd.OrderID,
			"event", cmd.Event,
			"status", after.PaymentStatus(),
		)
		return &SettleResult{Order: after}, nil
	}

	s.logger.Infow("order payment settled",
		"order_id", after.ID(),
		"order_code", after.OrderCode(),
		"event", cmd.Event,
		"from", before.PaymentStatus(),
		"to", after.PaymentStatus(),
	)

	s.notify(order.NewPaymentSettledEvent(before, after, cmd.Event))
	return &SettleResult{Order: after, Changed: true}, nil
}

// supersedePendingClaim closes a pending claim when the order was settled by
// another path, so the review queue does not show work that can no longer
// succeed.
func (s *SettlementService) supersedePendingClaim(ctx context.Context, o *order.Order) error {
	claim, err := s.claimRepo.GetPendingByOrderID(ctx, o.ID())
	if err != nil {
		return fmt.Errorf("failed to load pending claim: %w", err)
	}
	if claim == nil {
		return nil
	}
	if err := claim.Close(banktransfer.NoteSuperseded, s.now()); err != nil {
		return err
	}
	if err := s.claimRepo.Update(ctx, claim, banktransfer.ClaimStatusPending); err != nil {
		return err
	}
	s.metrics.ClaimAction(ClaimActionSuperseded)
	s.logger.Infow("pending bank transfer claim superseded",
		"claim_id", claim.ID(),
		"order_id", o.ID(),
		"status", o.PaymentStatus(),
	)
	return nil
}

func (s *SettlementService) notify(event *order.PaymentSettledEvent) {
	for _, n := range s.notifiers {
		n := n
		s.dispatch("payment-settled-notify", func(ctx context.Context) {
			if err := n.NotifyPaymentSettled(ctx, event); err != nil {
				s.metrics.NotificationFailed()
				s.logger.Errorw("failed to notify payment settlement",
					"order_id", event.OrderID,
					"order_code", event.OrderCode,
					"error", err,
				)
			}
		})
	}
}
