package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountCodeModel struct {
	ID          uint             `gorm:"primaryKey"`
	Code        string           `gorm:"uniqueIndex;size:64;not null"`
	Kind        string           `gorm:"size:16;not null"`
	Value       decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	MaxDiscount *decimal.Decimal `gorm:"type:decimal(15,2)"`
	MinSubtotal decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	UsageLimit  *int
	UsedCount   int  `gorm:"not null;default:0"`
	StartsAt    *time.Time
	EndsAt      *time.Time
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DiscountCodeModel) TableName() string {
	return "discount_codes"
}

type DiscountRedemptionModel struct {
	ID         uint            `gorm:"primaryKey"`
	CodeID     uint            `gorm:"index;not null"`
	OrderID    uint            `gorm:"uniqueIndex;not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RedeemedAt time.Time       `gorm:"not null"`
}

func (DiscountRedemptionModel) TableName() string {
	return "discount_redemptions"
}
