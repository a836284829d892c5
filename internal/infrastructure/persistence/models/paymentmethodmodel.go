package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethodModel struct {
	ID          string          `gorm:"primaryKey;size:32"`
	Name        string          `gorm:"size:64;not null"`
	Description string          `gorm:"size:255"`
	Enabled     bool            `gorm:"not null"`
	Fee         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Position    int             `gorm:"not null"`
	IsDefault   bool            `gorm:"not null"`
	UpdatedAt   time.Time
}

func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}
