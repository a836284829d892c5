package mappers

import (
	"fmt"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
)

func PaymentMethodToModel(m *paymentmethod.Method) *models.PaymentMethodModel {
	return &models.PaymentMethodModel{
		ID:          m.ID().String(),
		Name:        m.Name(),
		Description: m.Description(),
		Enabled:     m.IsEnabled(),
		Fee:         m.Fee().Decimal(),
		Position:    m.Position(),
		IsDefault:   m.IsDefault(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func PaymentMethodToDomain(model *models.PaymentMethodModel) (*paymentmethod.Method, error) {
	id, err := vo.NewPaymentMethod(model.ID)
	if err != nil {
		return nil, fmt.Errorf("payment method row: %w", err)
	}
	return paymentmethod.ReconstructMethod(
		id, model.Name, model.Description, model.Enabled, vo.NewMoney(model.Fee),
		model.Position, model.IsDefault, model.UpdatedAt,
	), nil
}
