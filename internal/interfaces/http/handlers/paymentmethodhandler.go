package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnstore/paycore/internal/application/payment/usecases"
	"github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/utils"
)

type PaymentMethodHandler struct {
	listAvailableUC listMethodsUseCase
	listAllUC       listMethodsUseCase
	updateUC        updateMethodsUseCase
	toggleUC        toggleMethodUseCase
	logger          logger.Interface
}

func NewPaymentMethodHandler(
	listAvailableUC listMethodsUseCase,
	listAllUC listMethodsUseCase,
	updateUC updateMethodsUseCase,
	toggleUC toggleMethodUseCase,
	logger logger.Interface,
) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		listAvailableUC: listAvailableUC,
		listAllUC:       listAllUC,
		updateUC:        updateUC,
		toggleUC:        toggleUC,
		logger:          logger,
	}
}

type MethodChangeRequest struct {
	ID          string  `json:"id" binding:"required"`
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Enabled     *bool   `json:"enabled"`
	Fee         *int64  `json:"fee" binding:"omitempty,min=0"`
	Position    *int    `json:"position" binding:"omitempty,min=0"`
}

type UpdateMethodsRequest struct {
	Methods []MethodChangeRequest `json:"methods" binding:"dive"`
	Default *string               `json:"default"`
}

type ToggleMethodRequest struct {
	NewDefault *string `json:"new_default"`
}

// @Summary		List available payment methods
// @Description	Enabled methods in display order
// @Tags			payment-methods
// @Produce		json
// @Success		200	{object}	utils.APIResponse{data=[]dto.PaymentMethodDTO}	"Methods"
// @Router			/payment-methods [get]
func (h *PaymentMethodHandler) ListAvailable(c *gin.Context) {
	result, err := h.listAvailableUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// @Summary		List all payment methods
// @Tags			payment-methods
// @Produce		json
// @Security		Bearer
// @Success		200	{object}	utils.APIResponse{data=[]dto.PaymentMethodDTO}	"Methods"
// @Router			/admin/payment-methods [get]
func (h *PaymentMethodHandler) ListAll(c *gin.Context) {
	result, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// @Summary		Update payment methods
// @Description	Apply every change atomically. At least one method must stay enabled and the default must be enabled.
// @Tags			payment-methods
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			body	body		UpdateMethodsRequest							true	"Changes"
// @Success		200		{object}	utils.APIResponse{data=[]dto.PaymentMethodDTO}	"Methods after the update"
// @Failure		400		{object}	utils.APIResponse								"Invariant violated"
// @Router			/admin/payment-methods [put]
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	var req UpdateMethodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateMethodsCommand{
		Default: req.Default,
		StaffID: staffIDFromContext(c),
	}
	for _, m := range req.Methods {
		cmd.Changes = append(cmd.Changes, usecases.MethodChange{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Enabled:     m.Enabled,
			Fee:         m.Fee,
			Position:    m.Position,
		})
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment methods updated", result)
}

// @Summary		Toggle payment method
// @Description	Flip the enabled flag. Disabling the default requires new_default.
// @Tags			payment-methods
// @Accept			json
// @Produce		json
// @Security		Bearer
// @Param			id		path		string										true	"Method ID"
// @Param			body	body		ToggleMethodRequest							false	"Replacement default"
// @Success		200		{object}	utils.APIResponse{data=dto.PaymentMethodDTO}	"Method after the toggle"
// @Router			/admin/payment-methods/{id}/toggle [put]
func (h *PaymentMethodHandler) Toggle(c *gin.Context) {
	var req ToggleMethodRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
			return
		}
	}

	result, err := h.toggleUC.Execute(c.Request.Context(), usecases.ToggleMethodCommand{
		ID:         c.Param("id"),
		NewDefault: req.NewDefault,
		StaffID:    staffIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment method toggled", result)
}
