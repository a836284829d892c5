package dto

import (
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
)

func toVND(m vo.Money) int64 {
	return m.Decimal().IntPart()
}

func ToOrderDTO(o *order.Order) *OrderDTO {
	if o == nil {
		return nil
	}

	items := o.Items()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			SKU:       item.SKU,
			Name:      item.Name,
			UnitPrice: toVND(item.UnitPrice),
			Quantity:  item.Quantity,
		})
	}

	return &OrderDTO{
		ID:             o.ID(),
		OrderCode:      o.OrderCode(),
		Items:          itemDTOs,
		Subtotal:       toVND(o.Subtotal()),
		ShippingFee:    toVND(o.ShippingFee()),
		DiscountAmount: toVND(o.DiscountAmount()),
		DiscountCode:   o.DiscountCode(),
		TotalAmount:    toVND(o.TotalAmount()),
		PaymentMethod:  o.PaymentMethod().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		FailureReason:  o.FailureReason(),
		FinalizedAt:    o.FinalizedAt(),
		CreatedAt:      o.CreatedAt(),
	}
}

// ToPaymentStatusDTO builds the polling view. pending may be nil.
func ToPaymentStatusDTO(o *order.Order, pending *banktransfer.Claim) *PaymentStatusDTO {
	if o == nil {
		return nil
	}
	return &PaymentStatusDTO{
		OrderID:       o.ID(),
		OrderCode:     o.OrderCode(),
		PaymentMethod: o.PaymentMethod().String(),
		PaymentStatus: o.PaymentStatus().String(),
		TotalAmount:   toVND(o.TotalAmount()),
		IsTerminal:    o.IsTerminal(),
		FailureReason: o.FailureReason(),
		FinalizedAt:   o.FinalizedAt(),
		PendingClaim:  ToClaimDTO(pending),
	}
}

func ToClaimDTO(c *banktransfer.Claim) *ClaimDTO {
	if c == nil {
		return nil
	}
	details := c.BankDetails()
	return &ClaimDTO{
		ID:              c.ID(),
		OrderID:         c.OrderID(),
		BankName:        details.BankName,
		BankCode:        details.BankCode,
		AccountNumber:   details.AccountNumber,
		AccountName:     details.AccountName,
		TransactionCode: c.TransactionCode(),
		ClaimedAmount:   toVND(c.ClaimedAmount()),
		SubmittedAt:     c.SubmittedAt(),
		Status:          c.Status().String(),
		Note:            c.Note(),
		VerifiedAt:      c.VerifiedAt(),
		VerifierID:      c.VerifierID(),
	}
}

func ToClaimDTOList(claims []*banktransfer.Claim) []*ClaimDTO {
	dtos := make([]*ClaimDTO, 0, len(claims))
	for _, c := range claims {
		if c != nil {
			dtos = append(dtos, ToClaimDTO(c))
		}
	}
	return dtos
}

func ToBankAccountDTO(a *banktransfer.BankAccount) *BankAccountDTO {
	if a == nil {
		return nil
	}
	return &BankAccountDTO{
		ID:            a.ID(),
		BankName:      a.BankName(),
		BankCode:      a.BankCode(),
		AccountNumber: a.AccountNumber(),
		AccountName:   a.AccountName(),
		Branch:        a.Branch(),
		QRImageRef:    a.QRImageRef(),
	}
}

func ToBankAccountDTOList(accounts []*banktransfer.BankAccount) []*BankAccountDTO {
	dtos := make([]*BankAccountDTO, 0, len(accounts))
	for _, a := range accounts {
		if a != nil {
			dtos = append(dtos, ToBankAccountDTO(a))
		}
	}
	return dtos
}

func ToPaymentMethodDTO(m *paymentmethod.Method) *PaymentMethodDTO {
	if m == nil {
		return nil
	}
	return &PaymentMethodDTO{
		ID:          m.ID().String(),
		Name:        m.Name(),
		Description: m.Description(),
		Enabled:     m.IsEnabled(),
		Fee:         toVND(m.Fee()),
		Position:    m.Position(),
		IsDefault:   m.IsDefault(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

// ToPaymentMethodDTOList returns an empty slice, never nil, so JSON renders [].
func ToPaymentMethodDTOList(methods []*paymentmethod.Method) []*PaymentMethodDTO {
	dtos := make([]*PaymentMethodDTO, 0, len(methods))
	for _, m := range methods {
		if m != nil {
			dtos = append(dtos, ToPaymentMethodDTO(m))
		}
	}
	return dtos
}

func ToCallbackLogDTOList(logs []*order.CallbackLog) []*CallbackLogDTO {
	dtos := make([]*CallbackLogDTO, 0, len(logs))
	for _, l := range logs {
		if l == nil {
			continue
		}
		dtos = append(dtos, &CallbackLogDTO{
			ID:             l.ID,
			Source:         l.Source,
			TxnRef:         l.TxnRef,
			ResponseCode:   l.ResponseCode,
			SignatureValid: l.SignatureValid,
			Outcome:        l.Outcome,
			RawParams:      l.RawParams,
			ClientIP:       l.ClientIP,
			CreatedAt:      l.CreatedAt,
		})
	}
	return dtos
}
