package usecases

import (
	"context"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/shared/constants"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type ListClaimsQuery struct {
	Status   string
	Page     int
	PageSize int
}

type ListClaimsResult struct {
	Claims   []*dto.ClaimDTO
	Total    int64
	Page     int
	PageSize int
}

// ListClaimsUseCase is the staff worklist, oldest submission first.
type ListClaimsUseCase struct {
	claimRepo banktransfer.ClaimRepository
	logger    logger.Interface
}

func NewListClaimsUseCase(claimRepo banktransfer.ClaimRepository, logger logger.Interface) *ListClaimsUseCase {
	return &ListClaimsUseCase{claimRepo: claimRepo, logger: logger}
}

func (uc *ListClaimsUseCase) Execute(ctx context.Context, query ListClaimsQuery) (*ListClaimsResult, error) {
	status, err := banktransfer.NewClaimStatus(query.Status)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid claim status", query.Status)
	}

	page := query.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	claims, total, err := uc.claimRepo.ListByStatus(ctx, status, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list bank transfer claims", "error", err, "status", status)
		return nil, err
	}

	return &ListClaimsResult{
		Claims:   dto.ToClaimDTOList(claims),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
