package banktransfer

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var bankBINPattern = regexp.MustCompile(`^\d{6}$`)

// BankAccount is a store-owned receiving account shown to customers.
type BankAccount struct {
	id            uint
	bankName      string
	bankCode      string
	accountNumber string
	accountName   string
	branch        string
	qrImageRef    string
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBankAccount validates a receiving account. bankCode is the six-digit
// NAPAS acquirer BIN used in VietQR payloads.
func NewBankAccount(bankName, bankCode, accountNumber, accountName, branch, qrImageRef string, now time.Time) (*BankAccount, error) {
	if strings.TrimSpace(bankName) == "" {
		return nil, fmt.Errorf("bank name is required")
	}
	if !bankBINPattern.MatchString(bankCode) {
		return nil, fmt.Errorf("bank code must be a 6-digit BIN, got %q", bankCode)
	}
	if strings.TrimSpace(accountNumber) == "" {
		return nil, fmt.Errorf("account number is required")
	}
	if strings.TrimSpace(accountName) == "" {
		return nil, fmt.Errorf("account name is required")
	}
	return &BankAccount{
		bankName:      strings.TrimSpace(bankName),
		bankCode:      bankCode,
		accountNumber: strings.TrimSpace(accountNumber),
		accountName:   strings.ToUpper(strings.TrimSpace(accountName)),
		branch:        branch,
		qrImageRef:    qrImageRef,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Details returns the value copied onto a claim.
func (a *BankAccount) Details() BankDetails {
	return BankDetails{
		BankName:      a.bankName,
		BankCode:      a.bankCode,
		AccountNumber: a.accountNumber,
		AccountName:   a.accountName,
	}
}

func (a *BankAccount) Deactivate(now time.Time) {
	a.active = false
	a.updatedAt = now
}

func (a *BankAccount) SetID(id uint) {
	a.id = id
}

func (a *BankAccount) ID() uint {
	return a.id
}

func (a *BankAccount) BankName() string {
	return a.bankName
}

func (a *BankAccount) BankCode() string {
	return a.bankCode
}

func (a *BankAccount) AccountNumber() string {
	return a.accountNumber
}

func (a *BankAccount) AccountName() string {
	return a.accountName
}

func (a *BankAccount) Branch() string {
	return a.branch
}

func (a *BankAccount) QRImageRef() string {
	return a.qrImageRef
}

func (a *BankAccount) IsActive() bool {
	return a.active
}

func (a *BankAccount) CreatedAt() time.Time {
	return a.createdAt
}

func (a *BankAccount) UpdatedAt() time.Time {
	return a.updatedAt
}

func ReconstructBankAccount(id uint, bankName, bankCode, accountNumber, accountName, branch, qrImageRef string, active bool, createdAt, updatedAt time.Time) *BankAccount {
	return &BankAccount{
		id:            id,
		bankName:      bankName,
		bankCode:      bankCode,
		accountNumber: accountNumber,
		accountName:   accountName,
		branch:        branch,
		qrImageRef:    qrImageRef,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}
