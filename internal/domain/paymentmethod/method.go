package paymentmethod

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

// Method is a payment method offered at checkout.
type Method struct {
	id          vo.PaymentMethod
	name        string
	description string
	enabled     bool
	fee         vo.Money
	position    int
	isDefault   bool
	updatedAt   time.Time
}

func NewMethod(id vo.PaymentMethod, name, description string, fee vo.Money, position int, now time.Time) (*Method, error) {
	if !id.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", id)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("method name is required")
	}
	if fee.IsNegative() {
		return nil, fmt.Errorf("method fee must not be negative")
	}
	return &Method{
		id:          id,
		name:        strings.TrimSpace(name),
		description: description,
		enabled:     true,
		fee:         fee,
		position:    position,
		updatedAt:   now,
	}, nil
}

func (m *Method) ID() vo.PaymentMethod {
	return m.id
}

func (m *Method) Name() string {
	return m.name
}

func (m *Method) Description() string {
	return m.description
}

func (m *Method) IsEnabled() bool {
	return m.enabled
}

func (m *Method) Fee() vo.Money {
	return m.fee
}

func (m *Method) Position() int {
	return m.position
}

func (m *Method) IsDefault() bool {
	return m.isDefault
}

func (m *Method) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Method) clone() *Method {
	c := *m
	return &c
}

func ReconstructMethod(id vo.PaymentMethod, name, description string, enabled bool, fee vo.Money, position int, isDefault bool, updatedAt time.Time) *Method {
	return &Method{
		id:          id,
		name:        name,
		description: description,
		enabled:     enabled,
		fee:         fee,
		position:    position,
		isDefault:   isDefault,
		updatedAt:   updatedAt,
	}
}
