package mappers

import (
	"fmt"

	"github.com/vnstore/paycore/internal/domain/discount"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/infrastructure/persistence/models"
)

func DiscountCodeToModel(c *discount.Code) *models.DiscountCodeModel {
	model := &models.DiscountCodeModel{
		ID:          c.ID(),
		Code:        c.Code(),
		Kind:        string(c.Kind()),
		Value:       c.Value(),
		MinSubtotal: c.MinSubtotal().Decimal(),
		UsageLimit:  c.UsageLimit(),
		UsedCount:   c.UsedCount(),
		StartsAt:    c.StartsAt(),
		EndsAt:      c.EndsAt(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
	if capped := c.MaxDiscount(); capped != nil {
		d := capped.Decimal()
		model.MaxDiscount = &d
	}
	return model
}

func DiscountCodeToDomain(model *models.DiscountCodeModel) (*discount.Code, error) {
	kind := discount.Kind(model.Kind)
	if kind != discount.KindFixed && kind != discount.KindPercent {
		return nil, fmt.Errorf("discount code %d: invalid kind %q", model.ID, model.Kind)
	}

	var maxDiscount *vo.Money
	if model.MaxDiscount != nil {
		m := vo.NewMoney(*model.MaxDiscount)
		maxDiscount = &m
	}

	return discount.ReconstructCode(discount.CodeReconstructParams{
		ID:          model.ID,
		Code:        model.Code,
		Kind:        kind,
		Value:       model.Value,
		MaxDiscount: maxDiscount,
		MinSubtotal: vo.NewMoney(model.MinSubtotal),
		UsageLimit:  model.UsageLimit,
		UsedCount:   model.UsedCount,
		StartsAt:    model.StartsAt,
		EndsAt:      model.EndsAt,
		Active:      model.Active,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}), nil
}

func RedemptionToModel(r *discount.Redemption) *models.DiscountRedemptionModel {
	return &models.DiscountRedemptionModel{
		CodeID:     r.CodeID,
		OrderID:    r.OrderID,
		Amount:     r.Amount.Decimal(),
		RedeemedAt: r.RedeemedAt,
	}
}
