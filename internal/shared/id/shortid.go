package id

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	// Uppercase alphanumerics without look-alikes (0/O, 1/I) so codes read well
	// over the phone and survive bank memo fields.
	alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 10
)

// Generate creates a random short ID with the specified length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// NewOrderCode returns a human-facing order reference such as "ORD7K2M9XQ4B1".
// The code doubles as the default transfer description customers put in the
// bank memo field, so it only contains characters every bank accepts.
func NewOrderCode(prefix string) (string, error) {
	code, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + code, nil
}

// NewRequestID returns a random correlation id for an inbound request.
func NewRequestID() string {
	return uuid.NewString()
}
