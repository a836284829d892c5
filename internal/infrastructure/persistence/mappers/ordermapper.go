package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) (*models.OrderModel, error) {
	items := o.Items()
	stored := make([]models.LineItemJSON, len(items))
	for i, item := range items {
		stored[i] = models.LineItemJSON{
			SKU:       item.SKU,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.Decimal(),
			Quantity:  item.Quantity,
		}
	}
	itemsJSON, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode line items: %w", err)
	}

	return &models.OrderModel{
		ID:             o.ID(),
		OrderCode:      o.OrderCode(),
		Items:          datatypes.JSON(itemsJSON),
		Subtotal:       o.Subtotal().Decimal(),
		ShippingFee:    o.ShippingFee().Decimal(),
		DiscountAmount: o.DiscountAmount().Decimal(),
		DiscountCode:   o.DiscountCode(),
		TotalAmount:    o.TotalAmount().Decimal(),
		PaymentMethod:  o.PaymentMethod().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		FailureReason:  o.FailureReason(),
		FinalizedAt:    o.FinalizedAt(),
		CustomerName:   o.CustomerName(),
		CustomerEmail:  o.CustomerEmail(),
		Version:        o.Version(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}, nil
}

func OrderToDomain(model *models.OrderModel) (*order.Order, error) {
	method, err := vo.NewPaymentMethod(model.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", model.ID, err)
	}
	status, err := vo.NewPaymentStatus(model.PaymentStatus)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", model.ID, err)
	}

	var stored []models.LineItemJSON
	if len(model.Items) > 0 {
		if err := json.Unmarshal(model.Items, &stored); err != nil {
			return nil, fmt.Errorf("order %d: failed to decode line items: %w", model.ID, err)
		}
	}
	items := make([]vo.LineItem, len(stored))
	for i, s := range stored {
		items[i] = vo.LineItem{
			SKU:       s.SKU,
			Name:      s.Name,
			UnitPrice: vo.NewMoney(s.UnitPrice),
			Quantity:  s.Quantity,
		}
	}

	return order.ReconstructOrder(order.ReconstructParams{
		ID:             model.ID,
		OrderCode:      model.OrderCode,
		Items:          items,
		Subtotal:       vo.NewMoney(model.Subtotal),
		ShippingFee:    vo.NewMoney(model.ShippingFee),
		DiscountAmount: vo.NewMoney(model.DiscountAmount),
		DiscountCode:   model.DiscountCode,
		TotalAmount:    vo.NewMoney(model.TotalAmount),
		PaymentMethod:  method,
		PaymentStatus:  status,
		FailureReason:  model.FailureReason,
		FinalizedAt:    model.FinalizedAt,
		CustomerName:   model.CustomerName,
		CustomerEmail:  model.CustomerEmail,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}), nil
}

func CallbackLogToModel(l *order.CallbackLog) (*models.PaymentCallbackLogModel, error) {
	raw, err := json.Marshal(l.RawParams)
	if err != nil {
		return nil, fmt.Errorf("failed to encode callback params: %w", err)
	}
	return &models.PaymentCallbackLogModel{
		ID:             l.ID,
		Source:         l.Source,
		OrderID:        l.OrderID,
		TxnRef:         l.TxnRef,
		ResponseCode:   l.ResponseCode,
		SignatureValid: l.SignatureValid,
		Outcome:        l.Outcome,
		RawParams:      datatypes.JSON(raw),
		ClientIP:       l.ClientIP,
		CreatedAt:      l.CreatedAt,
	}, nil
}

func CallbackLogToDomain(model *models.PaymentCallbackLogModel) (*order.CallbackLog, error) {
	params := map[string]string{}
	if len(model.RawParams) > 0 {
		if err := json.Unmarshal(model.RawParams, &params); err != nil {
			return nil, fmt.Errorf("callback log %d: failed to decode params: %w", model.ID, err)
		}
	}
	return &order.CallbackLog{
		ID:             model.ID,
		Source:         model.Source,
		OrderID:        model.OrderID,
		TxnRef:         model.TxnRef,
		ResponseCode:   model.ResponseCode,
		SignatureValid: model.SignatureValid,
		Outcome:        model.Outcome,
		RawParams:      params,
		ClientIP:       model.ClientIP,
		CreatedAt:      model.CreatedAt,
	}, nil
}
