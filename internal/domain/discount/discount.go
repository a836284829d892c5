package discount

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

type Kind string

const (
	KindFixed   Kind = "fixed"
	KindPercent Kind = "percent"
)

var (
	ErrCodeInactive      = errors.New("discount code is not active")
	ErrCodeNotStarted    = errors.New("discount code is not valid yet")
	ErrCodeExpired       = errors.New("discount code has expired")
	ErrMinSubtotalNotMet = errors.New("order subtotal is below the discount minimum")
	ErrUsageLimitReached = errors.New("discount code usage limit reached")
	ErrAlreadyRedeemed   = errors.New("order already has a discount redemption")
)

var hundred = decimal.NewFromInt(100)

// Code is a redeemable discount. The amount it grants is frozen onto the
// order at checkout; later edits to the code never change existing orders.
type Code struct {
	id          uint
	code        string
	kind        Kind
	value       decimal.Decimal
	maxDiscount *vo.Money
	minSubtotal vo.Money
	usageLimit  *int
	usedCount   int
	startsAt    *time.Time
	endsAt      *time.Time
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

type NewCodeParams struct {
	Code        string
	Kind        Kind
	Value       decimal.Decimal
	MaxDiscount *vo.Money
	MinSubtotal vo.Money
	UsageLimit  *int
	StartsAt    *time.Time
	EndsAt      *time.Time
}

func NewCode(p NewCodeParams, now time.Time) (*Code, error) {
	code := NormalizeCode(p.Code)
	if code == "" {
		return nil, fmt.Errorf("discount code is required")
	}
	switch p.Kind {
	case KindFixed:
		if !p.Value.IsPositive() {
			return nil, fmt.Errorf("fixed discount value must be positive")
		}
	case KindPercent:
		if !p.Value.IsPositive() || p.Value.GreaterThan(hundred) {
			return nil, fmt.Errorf("percent discount must be in (0, 100]")
		}
	default:
		return nil, fmt.Errorf("invalid discount kind: %s", p.Kind)
	}
	if p.UsageLimit != nil && *p.UsageLimit < 0 {
		return nil, fmt.Errorf("usage limit must not be negative")
	}
	if p.StartsAt != nil && p.EndsAt != nil && !p.EndsAt.After(*p.StartsAt) {
		return nil, fmt.Errorf("discount window end must be after start")
	}
	return &Code{
		code:        code,
		kind:        p.Kind,
		value:       p.Value,
		maxDiscount: p.MaxDiscount,
		minSubtotal: p.MinSubtotal,
		usageLimit:  p.UsageLimit,
		startsAt:    p.StartsAt,
		endsAt:      p.EndsAt,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NormalizeCode canonicalizes user input for lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Evaluate returns the amount this code grants on subtotal at now. The result
// is whole dong and never exceeds subtotal.
func (c *Code) Evaluate(subtotal vo.Money, now time.Time) (vo.Money, error) {
	if !c.active {
		return vo.Zero(), ErrCodeInactive
	}
	if c.startsAt != nil && now.Before(*c.startsAt) {
		return vo.Zero(), ErrCodeNotStarted
	}
	if c.endsAt != nil && !now.Before(*c.endsAt) {
		return vo.Zero(), ErrCodeExpired
	}
	if subtotal.Decimal().LessThan(c.minSubtotal.Decimal()) {
		return vo.Zero(), ErrMinSubtotalNotMet
	}
	if c.usageLimit != nil && c.usedCount >= *c.usageLimit {
		return vo.Zero(), ErrUsageLimitReached
	}

	var amount vo.Money
	switch c.kind {
	case KindPercent:
		amount = vo.NewMoney(subtotal.Decimal().Mul(c.value).Div(hundred).Floor())
		if c.maxDiscount != nil {
			amount = amount.Min(*c.maxDiscount)
		}
	default:
		amount = vo.NewMoney(c.value.Floor())
	}
	return amount.Min(subtotal), nil
}

func (c *Code) SetID(id uint) {
	c.id = id
}

func (c *Code) ID() uint {
	return c.id
}

func (c *Code) Code() string {
	return c.code
}

func (c *Code) Kind() Kind {
	return c.kind
}

func (c *Code) Value() decimal.Decimal {
	return c.value
}

func (c *Code) MaxDiscount() *vo.Money {
	return c.maxDiscount
}

func (c *Code) MinSubtotal() vo.Money {
	return c.minSubtotal
}

func (c *Code) UsageLimit() *int {
	return c.usageLimit
}

func (c *Code) UsedCount() int {
	return c.usedCount
}

func (c *Code) StartsAt() *time.Time {
	return c.startsAt
}

func (c *Code) EndsAt() *time.Time {
	return c.endsAt
}

func (c *Code) IsActive() bool {
	return c.active
}

func (c *Code) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Code) UpdatedAt() time.Time {
	return c.updatedAt
}

type CodeReconstructParams struct {
	ID          uint
	Code        string
	Kind        Kind
	Value       decimal.Decimal
	MaxDiscount *vo.Money
	MinSubtotal vo.Money
	UsageLimit  *int
	UsedCount   int
	StartsAt    *time.Time
	EndsAt      *time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ReconstructCode(p CodeReconstructParams) *Code {
	return &Code{
		id:          p.ID,
		code:        p.Code,
		kind:        p.Kind,
		value:       p.Value,
		maxDiscount: p.MaxDiscount,
		minSubtotal: p.MinSubtotal,
		usageLimit:  p.UsageLimit,
		usedCount:   p.UsedCount,
		startsAt:    p.StartsAt,
		endsAt:      p.EndsAt,
		active:      p.Active,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}
}

// Redemption records that a code was applied to an order.
type Redemption struct {
	CodeID     uint
	OrderID    uint
	Amount     vo.Money
	RedeemedAt time.Time
}
