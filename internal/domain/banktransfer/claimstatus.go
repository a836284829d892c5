package banktransfer

import "fmt"

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusVerified ClaimStatus = "verified"
	ClaimStatusFailed   ClaimStatus = "failed"
)

func NewClaimStatus(s string) (ClaimStatus, error) {
	cs := ClaimStatus(s)
	switch cs {
	case ClaimStatusPending, ClaimStatusVerified, ClaimStatusFailed:
		return cs, nil
	default:
		return "", fmt.Errorf("invalid claim status: %s", s)
	}
}

func (s ClaimStatus) IsPending() bool {
	return s == ClaimStatusPending
}

func (s ClaimStatus) String() string {
	return string(s)
}
