package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "Thanh toan don hang", FoldASCII("Thanh toán đơn hàng"))
	assert.Equal(t, "DUONG", FoldASCII("ĐƯỜNG"))
	assert.Equal(t, "ORD123", FoldASCII("ORD123"))
}

func TestKeepChars(t *testing.T) {
	got := KeepChars("  Thanh toán   #ORD-123!  ", IsAlphanumeric, 0)
	assert.Equal(t, "Thanh toan ORD123", got)

	assert.Equal(t, "ABCDE", KeepChars("ABCDEFGH", IsAlphanumeric, 5))
}
