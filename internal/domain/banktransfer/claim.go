package banktransfer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

// ErrAlreadyDecided is returned when a claim that is no longer pending is
// verified, rejected or resubmitted.
var ErrAlreadyDecided = errors.New("bank transfer claim already decided")

const (
	NoteExpired    = "expired without review"
	NoteSuperseded = "superseded: order settled by another payment path"
)

// Claim is a customer's assertion that they transferred money for an order.
// It never changes the order by itself; staff decide it.
type Claim struct {
	id              uint
	orderID         uint
	bankDetails     BankDetails
	transactionCode string
	claimedAmount   vo.Money
	submittedAt     time.Time
	status          ClaimStatus
	note            *string
	verifiedAt      *time.Time
	verifierID      *uint
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewClaim(orderID uint, details BankDetails, transactionCode string, claimedAmount vo.Money, at time.Time) (*Claim, error) {
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}
	if err := validateSubmission(details, transactionCode, claimedAmount); err != nil {
		return nil, err
	}

	return &Claim{
		orderID:         orderID,
		bankDetails:     details,
		transactionCode: strings.TrimSpace(transactionCode),
		claimedAmount:   claimedAmount,
		submittedAt:     at,
		status:          ClaimStatusPending,
		version:         1,
		createdAt:       at,
		updatedAt:       at,
	}, nil
}

func validateSubmission(details BankDetails, transactionCode string, claimedAmount vo.Money) error {
	if err := details.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(transactionCode) == "" {
		return fmt.Errorf("transaction code is required")
	}
	if !claimedAmount.IsPositive() {
		return fmt.Errorf("claimed amount must be positive")
	}
	return nil
}

// Resubmit replaces the submitted details of a pending claim. The original
// submission time is kept so the claim does not jump the review queue.
func (c *Claim) Resubmit(details BankDetails, transactionCode string, claimedAmount vo.Money, at time.Time) error {
	if !c.status.IsPending() {
		return ErrAlreadyDecided
	}
	if err := validateSubmission(details, transactionCode, claimedAmount); err != nil {
		return err
	}
	c.bankDetails = details
	c.transactionCode = strings.TrimSpace(transactionCode)
	c.claimedAmount = claimedAmount
	c.touch(at)
	return nil
}

// Verify records a staff confirmation that the money arrived.
func (c *Claim) Verify(note string, verifierID uint, at time.Time) error {
	return c.decide(ClaimStatusVerified, note, &verifierID, at)
}

// Reject records a staff decision that no matching transfer exists.
func (c *Claim) Reject(note string, verifierID uint, at time.Time) error {
	return c.decide(ClaimStatusFailed, note, &verifierID, at)
}

// Close fails a pending claim without a verifier (expiry, supersession).
func (c *Claim) Close(note string, at time.Time) error {
	return c.decide(ClaimStatusFailed, note, nil, at)
}

func (c *Claim) decide(to ClaimStatus, note string, verifierID *uint, at time.Time) error {
	if !c.status.IsPending() {
		return ErrAlreadyDecided
	}
	c.status = to
	if note = strings.TrimSpace(note); note != "" {
		c.note = &note
	}
	c.verifiedAt = &at
	c.verifierID = verifierID
	c.touch(at)
	return nil
}

// AppendAuditNote adds to the note. Allowed in any status.
func (c *Claim) AppendAuditNote(note string, at time.Time) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if c.note != nil && *c.note != "" {
		note = *c.note + "\n" + note
	}
	c.note = &note
	c.touch(at)
}

// AmountMatches reports whether the claimed amount equals total.
func (c *Claim) AmountMatches(total vo.Money) bool {
	return c.claimedAmount.Equals(total)
}

// IsExpired reports whether a pending claim was submitted more than ttl before now.
func (c *Claim) IsExpired(ttl time.Duration, now time.Time) bool {
	return ttl > 0 && c.status.IsPending() && now.Sub(c.submittedAt) > ttl
}

func (c *Claim) touch(at time.Time) {
	c.updatedAt = at
	c.version++
}

func (c *Claim) SetID(id uint) {
	c.id = id
}

func (c *Claim) ID() uint {
	return c.id
}

func (c *Claim) OrderID() uint {
	return c.orderID
}

func (c *Claim) BankDetails() BankDetails {
	return c.bankDetails
}

func (c *Claim) TransactionCode() string {
	return c.transactionCode
}

func (c *Claim) ClaimedAmount() vo.Money {
	return c.claimedAmount
}

func (c *Claim) SubmittedAt() time.Time {
	return c.submittedAt
}

func (c *Claim) Status() ClaimStatus {
	return c.status
}

func (c *Claim) Note() *string {
	return c.note
}

func (c *Claim) VerifiedAt() *time.Time {
	return c.verifiedAt
}

func (c *Claim) VerifierID() *uint {
	return c.verifierID
}

func (c *Claim) Version() int {
	return c.version
}

func (c *Claim) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Claim) UpdatedAt() time.Time {
	return c.updatedAt
}

type ClaimReconstructParams struct {
	ID              uint
	OrderID         uint
	BankDetails     BankDetails
	TransactionCode string
	ClaimedAmount   vo.Money
	SubmittedAt     time.Time
	Status          ClaimStatus
	Note            *string
	VerifiedAt      *time.Time
	VerifierID      *uint
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructClaim(p ClaimReconstructParams) *Claim {
	return &Claim{
		id:              p.ID,
		orderID:         p.OrderID,
		bankDetails:     p.BankDetails,
		transactionCode: p.TransactionCode,
		claimedAmount:   p.ClaimedAmount,
		submittedAt:     p.SubmittedAt,
		status:          p.Status,
		note:            p.Note,
		verifiedAt:      p.VerifiedAt,
		verifierID:      p.VerifierID,
		version:         p.Version,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}
