package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BankTransferClaimModel struct {
	ID      uint `gorm:"primaryKey"`
	OrderID uint `gorm:"index;not null"`
	// PendingOrderID mirrors OrderID while the claim is pending and is NULL
	// afterwards, so the unique index allows one pending claim per order.
	PendingOrderID  *uint           `gorm:"uniqueIndex"`
	BankName        string          `gorm:"size:128;not null"`
	BankCode        string          `gorm:"size:16"`
	AccountNumber   string          `gorm:"size:32;not null"`
	AccountName     string          `gorm:"size:128;not null"`
	TransactionCode string          `gorm:"size:64;not null"`
	ClaimedAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SubmittedAt     time.Time       `gorm:"not null;index"`
	Status          string          `gorm:"size:20;not null;index"`
	Note            *string         `gorm:"type:text"`
	VerifiedAt      *time.Time
	VerifierID      *uint
	Version         int `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (BankTransferClaimModel) TableName() string {
	return "bank_transfer_claims"
}

type BankAccountModel struct {
	ID            uint   `gorm:"primaryKey"`
	BankName      string `gorm:"size:128;not null"`
	BankCode      string `gorm:"size:16;not null;uniqueIndex:idx_bank_account"`
	AccountNumber string `gorm:"size:32;not null;uniqueIndex:idx_bank_account"`
	AccountName   string `gorm:"size:128;not null"`
	Branch        string `gorm:"size:128"`
	QRImageRef    string `gorm:"size:512"`
	Active        bool   `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (BankAccountModel) TableName() string {
	return "bank_accounts"
}
