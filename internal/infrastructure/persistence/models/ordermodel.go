package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderModel struct {
	ID             uint            `gorm:"primaryKey"`
	OrderCode      string          `gorm:"uniqueIndex;size:32;not null"`
	Items          datatypes.JSON  `gorm:"not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ShippingFee    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DiscountCode   *string         `gorm:"size:64"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod  string          `gorm:"size:20;not null"`
	PaymentStatus  string          `gorm:"size:20;not null;index"`
	FailureReason  *string         `gorm:"size:255"`
	FinalizedAt    *time.Time
	CustomerName   string `gorm:"size:128;not null"`
	CustomerEmail  string `gorm:"size:255;not null"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// LineItemJSON is the stored shape of one entry in OrderModel.Items.
type LineItemJSON struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// PaymentCallbackLogModel records every gateway callback, authentic or not.
type PaymentCallbackLogModel struct {
	ID             uint           `gorm:"primaryKey"`
	Source         string         `gorm:"size:16;not null"`
	OrderID        *uint          `gorm:"index"`
	TxnRef         string         `gorm:"size:64;index"`
	ResponseCode   string         `gorm:"size:8"`
	SignatureValid bool           `gorm:"not null"`
	Outcome        string         `gorm:"size:32;not null"`
	RawParams      datatypes.JSON `gorm:"not null"`
	ClientIP       string         `gorm:"size:64"`
	CreatedAt      time.Time      `gorm:"index"`
}

func (PaymentCallbackLogModel) TableName() string {
	return "payment_callback_logs"
}
