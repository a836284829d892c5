package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/shared/biztime"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

const maxClaimNoteLength = 500

type AppendClaimNoteCommand struct {
	ClaimID uint
	Note    string
	StaffID uint
}

// AppendClaimNoteUseCase lets staff annotate a claim after the fact. It is
// the only change allowed on a verified or failed claim.
type AppendClaimNoteUseCase struct {
	claimRepo banktransfer.ClaimRepository
	txMgr     TransactionManager
	now       func() time.Time
	logger    logger.Interface
}

func NewAppendClaimNoteUseCase(
	claimRepo banktransfer.ClaimRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *AppendClaimNoteUseCase {
	return &AppendClaimNoteUseCase{
		claimRepo: claimRepo,
		txMgr:     txMgr,
		now:       biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *AppendClaimNoteUseCase) Execute(ctx context.Context, cmd AppendClaimNoteCommand) (*dto.ClaimDTO, error) {
	note := strings.TrimSpace(cmd.Note)
	if note == "" {
		return nil, apperrors.NewValidationError("note is required")
	}
	if len(note) > maxClaimNoteLength {
		return nil, apperrors.NewValidationError("note is too long")
	}

	var claim *banktransfer.Claim
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		locked, err := uc.claimRepo.GetByIDForUpdate(ctx, cmd.ClaimID)
		if err != nil {
			return err
		}
		status := locked.Status()
		locked.AppendAuditNote(note, uc.now())
		if err := uc.claimRepo.Update(ctx, locked, status); err != nil {
			return err
		}
		claim = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("bank transfer claim note added",
		"claim_id", claim.ID(),
		"order_id", claim.OrderID(),
		"status", claim.Status(),
		"staff_id", cmd.StaffID,
	)
	return dto.ToClaimDTO(claim), nil
}
