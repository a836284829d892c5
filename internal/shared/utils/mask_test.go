package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "u***@example.com", MaskEmail("user@example.com"))
	assert.Equal(t, "a***@x.vn", MaskEmail("a@x.vn"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "******6789", MaskAccountNumber("0123456789"))
	assert.Equal(t, "***", MaskAccountNumber("123"))
}
