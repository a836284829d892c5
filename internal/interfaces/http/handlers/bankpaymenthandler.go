package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/application/payment/usecases"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/utils"
)

// BankPaymentHandler serves manual bank transfers: receiving accounts, QR
// codes, customer claims and the staff review queue.
type BankPaymentHandler struct {
	submitClaimUC      submitClaimUseCase
	verifyClaimUC      decideClaimUseCase
	rejectClaimUC      decideClaimUseCase
	appendNoteUC       appendClaimNoteUseCase
	listClaimsUC       listClaimsUseCase
	generateQRUC       generateQRUseCase
	listBankAccountsUC listBankAccountsUseCase
	logger             logger.Interface
}

func NewBankPaymentHandler(
	submitClaimUC submitClaimUseCase,
	verifyClaimUC decideClaimUseCase,
	rejectClaimUC decideClaimUseCase,
	appendNoteUC appendClaimNoteUseCase,
	listClaimsUC listClaimsUseCase,
	generateQRUC generateQRUseCase,
	listBankAccountsUC listBankAccountsUseCase,
	logger logger.Interface,
) *BankPaymentHandler {
	return &BankPaymentHandler{
		submitClaimUC:      submitClaimUC,
		verifyClaimUC:      verifyClaimUC,
		rejectClaimUC:      rejectClaimUC,
		appendNoteUC:       appendNoteUC,
		listClaimsUC:       listClaimsUC,
		generateQRUC:       generateQRUC,
		listBankAccountsUC: listBankAccountsUC,
		logger:             logger,
	}
}

// SubmitClaimRequest is decoded strictly; unknown fields are rejected.
type SubmitClaimRequest struct {
	BankAccountID   *uint  `json:"bankAccountId" validate:"omitempty,gt=0"`
	BankName        string `json:"bankName" validate:"required_without=BankAccountID,max=255"`
	BankCode        string `json:"bankCode" validate:"max=16"`
	AccountNumber   string `json:"accountNumber" validate:"required_without=BankAccountID,max=32"`
	AccountName     string `json:"accountName" validate:"required_without=BankAccountID,max=255"`
	TransactionCode string `json:"transactionCode" validate:"required,max=64"`
	ClaimedAmount   int64  `json:"claimedAmount" validate:"gt=0"`
}

type VerifyClaimRequest struct {
	TransactionCode string `json:"transactionCode" validate:"max=64"`
	Note            string `json:"note" validate:"max=1000"`
}

type RejectClaimRequest struct {
	Note string `json:"note" validate:"required,max=1000"`
}

type AppendClaimNoteRequest struct {
	Note string `json:"note" validate:"required,max=500"`
}

type GenerateQRRequest struct {
	BankID      string `json:"bankId" validate:"required,max=16"`
	AccountNo   string `json:"accountNo" validate:"required,max=32"`
	AccountName string `json:"accountName" validate:"max=255"`
	Amount      int64  `json:"amount" validate:"gt=0"`
	Description string `json:"description" validate:"max=255"`
}

// @Summary		Submit bank transfer claim
// @Description	Record that the customer transferred money for an order. The order stays PENDING until staff review.
// @Tags			bank-payments
// @Accept			json
// @Produce		json
// @Param			orderId	path		int										true	"Order ID"
// @Param			claim	body		SubmitClaimRequest						true	"Transfer details"
// @Success		201		{object}	utils.APIResponse{data=dto.ClaimDTO}	"Claim recorded"
// @Failure		400		{object}	utils.APIResponse						"Bad request"
// @Failure		409		{object}	utils.APIResponse						"Order already finalized"
// @Router			/bank-payments/orders/{orderId} [post]
func (h *BankPaymentHandler) SubmitClaim(c *gin.Context) {
	orderID, err := utils.ParseUintParam(c, "orderId", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitClaimRequest
	if err := utils.DecodeStrictJSON(c.Request.Body, &req); err != nil {
		h.logger.Warnw("invalid claim submission", "error", err, "order_id", orderID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitClaimUC.Execute(c.Request.Context(), usecases.SubmitClaimCommand{
		OrderID:         orderID,
		BankAccountID:   req.BankAccountID,
		BankName:        req.BankName,
		BankCode:        req.BankCode,
		AccountNumber:   req.AccountNumber,
		AccountName:     req.AccountName,
		TransactionCode: req.TransactionCode,
		ClaimedAmount:   req.ClaimedAmount,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "claim submitted, awaiting verification")
}

// @Summary		Verify bank transfer claim
// @Description	Confirm the transfer arrived. The order becomes VERIFIED.
// @Tags			bank-payments
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			claimId	path		int												true	"Claim ID"
// @Param			body	body		VerifyClaimRequest								false	"Statement reference and note"
// @Success		200		{object}	utils.APIResponse{data=dto.ClaimDecisionDTO}	"Claim verified"
// @Failure		409		{object}	utils.APIResponse								"Claim already decided"
// @Router			/bank-payments/{claimId}/verify [put]
func (h *BankPaymentHandler) VerifyClaim(c *gin.Context) {
	claimID, err := utils.ParseUintParam(c, "claimId", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VerifyClaimRequest
	if c.Request.ContentLength != 0 {
		if err := utils.DecodeStrictJSON(c.Request.Body, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}
	// The transaction code may also arrive as a query parameter.
	if req.TransactionCode == "" {
		req.TransactionCode = c.Query("transactionCode")
	}

	result, err := h.verifyClaimUC.Execute(c.Request.Context(), usecases.DecideClaimCommand{
		ClaimID:         claimID,
		Note:            req.Note,
		VerifierID:      staffIDFromContext(c),
		TransactionCode: req.TransactionCode,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "claim verified", result)
}

// @Summary		Reject bank transfer claim
// @Description	Reject the claim with a note. The order becomes FAILED.
// @Tags			bank-payments
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			claimId	path		int												true	"Claim ID"
// @Param			body	body		RejectClaimRequest								true	"Rejection note"
// @Success		200		{object}	utils.APIResponse{data=dto.ClaimDecisionDTO}	"Claim rejected"
// @Failure		409		{object}	utils.APIResponse								"Claim already decided"
// @Router			/bank-payments/{claimId}/reject [put]
func (h *BankPaymentHandler) RejectClaim(c *gin.Context) {
	claimID, err := utils.ParseUintParam(c, "claimId", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectClaimRequest
	if err := utils.DecodeStrictJSON(c.Request.Body, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rejectClaimUC.Execute(c.Request.Context(), usecases.DecideClaimCommand{
		ClaimID:    claimID,
		Note:       req.Note,
		VerifierID: staffIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "claim rejected", result)
}

// @Summary		Annotate bank transfer claim
// @Description	Append an audit note to a claim in any status. Nothing else on a decided claim can change.
// @Tags			bank-payments
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			claimId	path		int										true	"Claim ID"
// @Param			body	body		AppendClaimNoteRequest					true	"Note"
// @Success		200		{object}	utils.APIResponse{data=dto.ClaimDTO}	"Note added"
// @Failure		404		{object}	utils.APIResponse						"Claim not found"
// @Router			/bank-payments/{claimId}/note [put]
func (h *BankPaymentHandler) AppendClaimNote(c *gin.Context) {
	claimID, err := utils.ParseUintParam(c, "claimId", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AppendClaimNoteRequest
	if err := utils.DecodeStrictJSON(c.Request.Body, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.appendNoteUC.Execute(c.Request.Context(), usecases.AppendClaimNoteCommand{
		ClaimID: claimID,
		Note:    req.Note,
		StaffID: staffIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "note added", result)
}

// @Summary		List claims by status
// @Description	Staff worklist of claims, oldest first
// @Tags			bank-payments
// @Produce		json
// @Security		Bearer
// @Param			status		path		string	true	"pending, verified or failed"
// @Param			page		query		int		false	"Page number"
// @Param			page_size	query		int		false	"Page size"
// @Success		200			{object}	utils.APIResponse{data=utils.ListResponse}	"Claims"
// @Router			/bank-payments/status/{status} [get]
func (h *BankPaymentHandler) ListClaims(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listClaimsUC.Execute(c.Request.Context(), usecases.ListClaimsQuery{
		Status:   c.Param("status"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Claims, result.Total, result.Page, result.PageSize)
}

// @Summary		Generate transfer QR code
// @Description	Build a VietQR image for a bank transfer. Falls back to the account's static QR when the renderer is unavailable.
// @Tags			bank-payments
// @Accept			json
// @Produce		json
// @Param			body	body		GenerateQRRequest						true	"Transfer details"
// @Success		200		{object}	utils.APIResponse{data=dto.QRCodeDTO}	"QR code"
// @Failure		400		{object}	utils.APIResponse						"Bad request"
// @Router			/bank-payments/generate-qr [post]
func (h *BankPaymentHandler) GenerateQR(c *gin.Context) {
	var req GenerateQRRequest
	if err := utils.DecodeStrictJSON(c.Request.Body, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateQRUC.Execute(c.Request.Context(), usecases.GenerateQRCommand{
		BankCode:      req.BankID,
		AccountNumber: req.AccountNo,
		AccountName:   req.AccountName,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// @Summary		List receiving bank accounts
// @Tags			bank-payments
// @Produce		json
// @Success		200	{object}	utils.APIResponse{data=[]dto.BankAccountDTO}	"Active accounts"
// @Router			/bank-accounts [get]
func (h *BankPaymentHandler) ListBankAccounts(c *gin.Context) {
	result, err := h.listBankAccountsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
