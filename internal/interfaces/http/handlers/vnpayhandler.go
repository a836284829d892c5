package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/application/payment/usecases"
	"github.com/vnstore/paycore/internal/domain/order"
	"github.com/vnstore/paycore/internal/infrastructure/payment/vnpay"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/utils"
)

// returnFailureMessage is all the customer's browser learns about a callback
// that could not be matched to an order or trusted.
const returnFailureMessage = "payment could not be processed"

type VNPayHandler struct {
	createPaymentUC  createVNPayPaymentUseCase
	handleCallbackUC handleVNPayCallbackUseCase
	logger           logger.Interface
}

func NewVNPayHandler(
	createPaymentUC createVNPayPaymentUseCase,
	handleCallbackUC handleVNPayCallbackUseCase,
	logger logger.Interface,
) *VNPayHandler {
	return &VNPayHandler{
		createPaymentUC:  createPaymentUC,
		handleCallbackUC: handleCallbackUC,
		logger:           logger,
	}
}

// CreateVNPayPaymentRequest is decoded strictly; unknown fields are rejected.
type CreateVNPayPaymentRequest struct {
	OrderID   uint   `json:"orderId" validate:"required,gt=0"`
	OrderInfo string `json:"orderInfo" validate:"max=255"`
	// Amount is optional; when sent it must equal the order total.
	Amount    *int64 `json:"amount" validate:"omitempty,gt=0"`
	ReturnURL string `json:"returnUrl" validate:"omitempty,url,max=512"`
}

// @Summary		Create VNPAY payment
// @Description	Build the signed VNPAY redirect URL for a PENDING order paid by VNPAY
// @Tags			vnpay
// @Accept			json
// @Produce		json
// @Param			body	body		CreateVNPayPaymentRequest						true	"Order to pay"
// @Success		200		{object}	utils.APIResponse{data=dto.VNPayPaymentDTO}	"Redirect URL"
// @Failure		400		{object}	utils.APIResponse								"Bad request"
// @Failure		409		{object}	utils.APIResponse								"Amount mismatch or order finalized"
// @Failure		503		{object}	utils.APIResponse								"Gateway unavailable"
// @Router			/vnpay/create-payment [post]
func (h *VNPayHandler) CreatePayment(c *gin.Context) {
	var req CreateVNPayPaymentRequest
	if err := utils.DecodeStrictJSON(c.Request.Body, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPaymentUC.Execute(c.Request.Context(), usecases.CreateVNPayPaymentCommand{
		OrderID:   req.OrderID,
		OrderInfo: req.OrderInfo,
		Amount:    req.Amount,
		ReturnURL: req.ReturnURL,
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// @Summary		VNPAY browser return
// @Description	Landing endpoint the customer's browser is redirected to after paying. Settles the order like the IPN does.
// @Tags			vnpay
// @Produce		json
// @Success		200	{object}	dto.CallbackResultDTO	"Payment result"
// @Failure		400	{object}	dto.CallbackResultDTO	"Invalid callback"
// @Router			/vnpay/payment-return [get]
func (h *VNPayHandler) PaymentReturn(c *gin.Context) {
	result := h.handleCallbackUC.Execute(c.Request.Context(), usecases.HandleVNPayCallbackCommand{
		Source:   order.CallbackSourceReturn,
		Params:   c.Request.URL.Query(),
		ClientIP: c.ClientIP(),
	})

	status := http.StatusOK
	message := result.Message
	orderID := result.OrderID
	switch result.Outcome {
	case order.CallbackOutcomeSignatureInvalid, order.CallbackOutcomeMalformed:
		status = http.StatusBadRequest
		message, orderID = returnFailureMessage, 0
	case order.CallbackOutcomeOrderNotFound, order.CallbackOutcomeProcessingFailure:
		// details stay in the log and the callback audit row
		message, orderID = returnFailureMessage, 0
	}

	c.JSON(status, dto.CallbackResultDTO{
		Success: result.Success,
		Message: message,
		OrderID: orderID,
	})
}

// @Summary		VNPAY IPN
// @Description	Server-to-server payment notification. The body is the acknowledgment VNPAY expects.
// @Tags			vnpay
// @Produce		json
// @Success		200	{object}	vnpay.IPNResponse	"Acknowledgment"
// @Router			/vnpay/ipn [get]
func (h *VNPayHandler) IPN(c *gin.Context) {
	result := h.handleCallbackUC.Execute(c.Request.Context(), usecases.HandleVNPayCallbackCommand{
		Source:   order.CallbackSourceIPN,
		Params:   c.Request.URL.Query(),
		ClientIP: c.ClientIP(),
	})

	c.JSON(http.StatusOK, vnpay.IPNResponseForOutcome(result.Outcome))
}
