package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/application/payment/usecases"
	"github.com/vnstore/paycore/internal/shared/constants"
	"github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/utils"
)

type OrderHandler struct {
	createOrderUC          createOrderUseCase
	getPaymentStatusUC     getPaymentStatusUseCase
	cancelOrderUC          cancelOrderUseCase
	confirmCashCollectedUC confirmCashCollectedUseCase
	listCallbackLogsUC     listCallbackLogsUseCase
	logger                 logger.Interface
}

func NewOrderHandler(
	createOrderUC createOrderUseCase,
	getPaymentStatusUC getPaymentStatusUseCase,
	cancelOrderUC cancelOrderUseCase,
	confirmCashCollectedUC confirmCashCollectedUseCase,
	listCallbackLogsUC listCallbackLogsUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createOrderUC:          createOrderUC,
		getPaymentStatusUC:     getPaymentStatusUC,
		cancelOrderUC:          cancelOrderUC,
		confirmCashCollectedUC: confirmCashCollectedUC,
		listCallbackLogsUC:     listCallbackLogsUC,
		logger:                 logger,
	}
}

type OrderItemRequest struct {
	SKU       string `json:"sku" binding:"required,max=64"`
	Name      string `json:"name" binding:"required,max=255"`
	UnitPrice int64  `json:"unit_price" binding:"min=0"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingFee   int64              `json:"shipping_fee" binding:"min=0"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	DiscountCode  string             `json:"discount_code" binding:"max=64"`
	CustomerName  string             `json:"customer_name" binding:"max=255"`
	CustomerEmail string             `json:"customer_email" binding:"omitempty,email"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// @Summary		Create order
// @Description	Price the cart, redeem an optional discount code and create a PENDING order
// @Tags			orders
// @Accept			json
// @Produce		json
// @Param			order	body		CreateOrderRequest							true	"Cart"
// @Success		201		{object}	utils.APIResponse{data=dto.CheckoutDTO}	"Order created"
// @Failure		400		{object}	utils.APIResponse							"Bad request"
// @Failure		429		{object}	utils.APIResponse							"Too many requests"
// @Router			/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create order request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateOrderCommand{
		ShippingFee:   req.ShippingFee,
		PaymentMethod: req.PaymentMethod,
		DiscountCode:  req.DiscountCode,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, usecases.CreateOrderItem{
			SKU:       item.SKU,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "order created successfully")
}

// @Summary		Get payment status
// @Description	Poll the payment status of an order
// @Tags			orders
// @Produce		json
// @Param			orderId	path		int												true	"Order ID"
// @Success		200		{object}	utils.APIResponse{data=dto.PaymentStatusDTO}	"Payment status"
// @Failure		404		{object}	utils.APIResponse								"Order not found"
// @Router			/orders/{orderId}/payment-status [get]
func (h *OrderHandler) GetPaymentStatus(c *gin.Context) {
	orderID, err := utils.ParseUintParam(c, "orderId", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPaymentStatusUC.Execute(c.Request.Context(), orderID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// @Summary		Get payment status by order code
// @Description	Poll the payment status using the code shown on the receipt and transfer note
// @Tags			orders
// @Produce		json
// @Param			orderCode	path		string											true	"Order code"
// @Success		200			{object}	utils.APIResponse{data=dto.PaymentStatusDTO}	"Payment status"
// @Failure		404			{object}	utils.APIResponse								"Order not found"
// @Router			/orders/code/{orderCode}/payment-status [get]
func (h *OrderHandler) GetPaymentStatusByCode(c *gin.Context) {
	result, err := h.getPaymentStatusUC.ExecuteByCode(c.Request.Context(), c.Param("orderCode"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// @Summary		List gateway callbacks
// @Description	Audit trail of every gateway delivery recorded for the order, oldest first
// @Tags			orders
// @Produce		json
// @Security		Bearer
// @Param			orderId	path		int												true	"Order ID"
// @Success		200		{object}	utils.APIResponse{data=[]dto.CallbackLogDTO}	"Callbacks"
// @Failure		404		{object}	utils.APIResponse								"Order not found"
// @Router			/orders/{orderId}/callbacks [get]
func (h *OrderHandler) ListCallbackLogs(c *gin.Context) {
	orderID, err := utils.ParseUintParam(c, "orderId", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCallbackLogsUC.Execute(c.Request.Context(), orderID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// @Summary		Cancel order
// @Description	Cancel a PENDING order. Terminal orders are rejected with 409.
// @Tags			orders
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			orderId	path		int												true	"Order ID"
// @Param			body	body		CancelOrderRequest								true	"Cancellation reason"
// @Success		200		{object}	utils.APIResponse{data=dto.PaymentStatusDTO}	"Order cancelled"
// @Failure		409		{object}	utils.APIResponse								"Order already finalized"
// @Router			/orders/{orderId}/cancel [put]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := utils.ParseUintParam(c, "orderId", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	result, err := h.cancelOrderUC.Execute(c.Request.Context(), usecases.CancelOrderCommand{
		OrderID: orderID,
		Reason:  req.Reason,
		StaffID: staffIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order cancelled", result)
}

// @Summary		Confirm cash collected
// @Description	Settle a cash-on-delivery order as PAID
// @Tags			orders
// @Produce		json
// @Security		Bearer
// @Param			orderId	path		int												true	"Order ID"
// @Success		200		{object}	utils.APIResponse{data=dto.PaymentStatusDTO}	"Order paid"
// @Failure		409		{object}	utils.APIResponse								"Order already finalized"
// @Router			/orders/{orderId}/cash-collected [put]
func (h *OrderHandler) ConfirmCashCollected(c *gin.Context) {
	orderID, err := utils.ParseUintParam(c, "orderId", "order")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.confirmCashCollectedUC.Execute(c.Request.Context(), usecases.ConfirmCashCollectedCommand{
		OrderID: orderID,
		StaffID: staffIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "cash collection confirmed", result)
}

func staffIDFromContext(c *gin.Context) uint {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
