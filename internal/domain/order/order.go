package order

import (
	"fmt"
	"time"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/shared/biztime"
	"github.com/vnstore/paycore/internal/shared/constants"
	"github.com/vnstore/paycore/internal/shared/id"
)

// Order is the payment-relevant view of a storefront order. The total is
// computed once at creation; payment status only changes through Transition.
type Order struct {
	id             uint
	orderCode      string
	items          []vo.LineItem
	subtotal       vo.Money
	shippingFee    vo.Money
	discountAmount vo.Money
	discountCode   *string
	totalAmount    vo.Money
	paymentMethod  vo.PaymentMethod
	paymentStatus  vo.PaymentStatus
	failureReason  *string
	finalizedAt    *time.Time
	customerName   string
	customerEmail  string
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewOrderParams carries checkout input. DiscountAmount is the amount granted
// by the discount resolver and is clamped to subtotal + shipping.
type NewOrderParams struct {
	Items          []vo.LineItem
	ShippingFee    vo.Money
	DiscountAmount vo.Money
	DiscountCode   *string
	PaymentMethod  vo.PaymentMethod
	CustomerName   string
	CustomerEmail  string
}

func NewOrder(p NewOrderParams) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if !p.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", p.PaymentMethod)
	}
	if p.ShippingFee.IsNegative() {
		return nil, fmt.Errorf("shipping fee must not be negative")
	}
	if p.DiscountAmount.IsNegative() {
		return nil, fmt.Errorf("discount amount must not be negative")
	}

	subtotal := vo.Zero()
	for _, item := range p.Items {
		subtotal = subtotal.Add(item.Total())
	}

	gross := subtotal.Add(p.ShippingFee)
	discount := p.DiscountAmount.Min(gross)
	total := gross.Sub(discount)
	if !total.IsWholeDong() {
		return nil, fmt.Errorf("order total %s is not a whole dong amount", total)
	}

	code, err := id.NewOrderCode(constants.OrderCodePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order code: %w", err)
	}

	items := make([]vo.LineItem, len(p.Items))
	copy(items, p.Items)

	now := biztime.NowUTC()
	return &Order{
		orderCode:      code,
		items:          items,
		subtotal:       subtotal,
		shippingFee:    p.ShippingFee,
		discountAmount: discount,
		discountCode:   p.DiscountCode,
		totalAmount:    total,
		paymentMethod:  p.PaymentMethod,
		paymentStatus:  vo.PaymentStatusPending,
		customerName:   p.CustomerName,
		customerEmail:  p.CustomerEmail,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ValidateCallbackAmount checks a gateway-reported amount against the order total.
func (o *Order) ValidateCallbackAmount(amount vo.Money) error {
	if !o.totalAmount.Equals(amount) {
		return fmt.Errorf("amount mismatch: expected %s, got %s", o.totalAmount, amount)
	}
	return nil
}

// SetID sets the order ID after persistence (used by repository after Create)
func (o *Order) SetID(id uint) {
	o.id = id
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) OrderCode() string {
	return o.orderCode
}

func (o *Order) Subtotal() vo.Money {
	return o.subtotal
}

func (o *Order) ShippingFee() vo.Money {
	return o.shippingFee
}

func (o *Order) DiscountAmount() vo.Money {
	return o.discountAmount
}

func (o *Order) DiscountCode() *string {
	return o.discountCode
}

func (o *Order) TotalAmount() vo.Money {
	return o.totalAmount
}

func (o *Order) PaymentMethod() vo.PaymentMethod {
	return o.paymentMethod
}

func (o *Order) PaymentStatus() vo.PaymentStatus {
	return o.paymentStatus
}

func (o *Order) FailureReason() *string {
	return o.failureReason
}

func (o *Order) FinalizedAt() *time.Time {
	return o.finalizedAt
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns a copy of the line items.
func (o *Order) Items() []vo.LineItem {
	items := make([]vo.LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) IsTerminal() bool {
	return o.paymentStatus.IsTerminal()
}

// ReconstructParams holds the stored state of an order.
type ReconstructParams struct {
	ID             uint
	OrderCode      string
	Items          []vo.LineItem
	Subtotal       vo.Money
	ShippingFee    vo.Money
	DiscountAmount vo.Money
	DiscountCode   *string
	TotalAmount    vo.Money
	PaymentMethod  vo.PaymentMethod
	PaymentStatus  vo.PaymentStatus
	FailureReason  *string
	FinalizedAt    *time.Time
	CustomerName   string
	CustomerEmail  string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReconstructOrder rebuilds an order from persistence without re-running checkout rules.
func ReconstructOrder(p ReconstructParams) *Order {
	return &Order{
		id:             p.ID,
		orderCode:      p.OrderCode,
		items:          p.Items,
		subtotal:       p.Subtotal,
		shippingFee:    p.ShippingFee,
		discountAmount: p.DiscountAmount,
		discountCode:   p.DiscountCode,
		totalAmount:    p.TotalAmount,
		paymentMethod:  p.PaymentMethod,
		paymentStatus:  p.PaymentStatus,
		failureReason:  p.FailureReason,
		finalizedAt:    p.FinalizedAt,
		customerName:   p.CustomerName,
		customerEmail:  p.CustomerEmail,
		version:        p.Version,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}
