package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/shared/biztime"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/utils"
)

// SubmitClaimCommand carries a customer's transfer claim. When BankAccountID
// is set the bank details are copied from that store account and the
// explicit fields are ignored.
type SubmitClaimCommand struct {
	OrderID         uint
	BankAccountID   *uint
	BankName        string
	BankCode        string
	AccountNumber   string
	AccountName     string
	TransactionCode string
	ClaimedAmount   int64
}

type SubmitClaimUseCase struct {
	orderRepo       order.Repository
	claimRepo       banktransfer.ClaimRepository
	bankAccountRepo banktransfer.BankAccountRepository
	txMgr           TransactionManager
	metrics         PaymentMetrics
	now             func() time.Time
	logger          logger.Interface
}

func NewSubmitClaimUseCase(
	orderRepo order.Repository,
	claimRepo banktransfer.ClaimRepository,
	bankAccountRepo banktransfer.BankAccountRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *SubmitClaimUseCase {
	return &SubmitClaimUseCase{
		orderRepo:       orderRepo,
		claimRepo:       claimRepo,
		bankAccountRepo: bankAccountRepo,
		txMgr:           txMgr,
		metrics:         noopMetrics{},
		now:             biztime.NowUTC,
		logger:          logger,
	}
}

func (uc *SubmitClaimUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

// Execute records the claim without touching the order status. A second
// submission for the same order replaces the pending claim's details.
func (uc *SubmitClaimUseCase) Execute(ctx context.Context, cmd SubmitClaimCommand) (*dto.ClaimDTO, error) {
	details, err := uc.resolveDetails(ctx, cmd)
	if err != nil {
		return nil, err
	}
	amount := vo.NewMoneyFromInt(cmd.ClaimedAmount)

	var (
		claim  *banktransfer.Claim
		action string
	)
	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		o, err := uc.orderRepo.GetByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return err
		}
		if o.PaymentMethod() != vo.PaymentMethodBankTransfer {
			return apperrors.NewValidationError("order is not a bank transfer order", o.PaymentMethod().String())
		}
		if o.IsTerminal() {
			return apperrors.NewAlreadyFinalizedError("order is already finalized", o.PaymentStatus().String())
		}

		now := uc.now()
		existing, err := uc.claimRepo.GetPendingByOrderIDForUpdate(ctx, o.ID())
		if err != nil {
			return err
		}
		if existing != nil {
			if err := existing.Resubmit(details, cmd.TransactionCode, amount, now); err != nil {
				return apperrors.NewValidationError("invalid bank transfer claim", err.Error())
			}
			err := uc.claimRepo.Update(ctx, existing, banktransfer.ClaimStatusPending)
			if err == nil {
				claim, action = existing, ClaimActionResubmitted
				return nil
			}
			if !errors.Is(err, banktransfer.ErrAlreadyDecided) {
				return err
			}
			// closed by the sweep after it was read; the new details start a fresh claim
			uc.logger.Infow("pending claim closed during resubmission",
				"claim_id", existing.ID(),
				"order_id", o.ID(),
			)
		}

		created, err := banktransfer.NewClaim(o.ID(), details, cmd.TransactionCode, amount, now)
		if err != nil {
			return apperrors.NewValidationError("invalid bank transfer claim", err.Error())
		}
		if err := uc.claimRepo.Create(ctx, created); err != nil {
			return err
		}
		claim, action = created, ClaimActionSubmitted
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.ClaimAction(action)
	uc.logger.Infow("bank transfer claim "+action,
		"claim_id", claim.ID(),
		"order_id", cmd.OrderID,
		"transaction_code", claim.TransactionCode(),
		"account_number", utils.MaskAccountNumber(claim.BankDetails().AccountNumber),
		"claimed_amount", claim.ClaimedAmount().Decimal().String(),
	)
	return dto.ToClaimDTO(claim), nil
}

func (uc *SubmitClaimUseCase) resolveDetails(ctx context.Context, cmd SubmitClaimCommand) (banktransfer.BankDetails, error) {
	if cmd.BankAccountID == nil {
		return banktransfer.BankDetails{
			BankName:      cmd.BankName,
			BankCode:      cmd.BankCode,
			AccountNumber: cmd.AccountNumber,
			AccountName:   cmd.AccountName,
		}, nil
	}
	account, err := uc.bankAccountRepo.GetByID(ctx, *cmd.BankAccountID)
	if err != nil {
		return banktransfer.BankDetails{}, err
	}
	if !account.IsActive() {
		return banktransfer.BankDetails{}, apperrors.NewValidationError("bank account is not active")
	}
	return account.Details(), nil
}
