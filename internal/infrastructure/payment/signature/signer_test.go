package signature

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "SECRETKEYFORTESTS0123456789ABCDEF"

func sampleParams() map[string]string {
	return map[string]string{
		"vnp_Version":   "2.1.0",
		"vnp_Command":   "pay",
		"vnp_TmnCode":   "DEMO0001",
		"vnp_Amount":    "3000000",
		"vnp_TxnRef":    "7-ORD7K2M9XQ4B1",
		"vnp_OrderInfo": "Thanh toan don hang ORD7K2M9XQ4B1",
		"vnp_ReturnUrl": "https://shop.example/vnpay/payment-return",
	}
}

func TestCanonicalize(t *testing.T) {
	got := Canonicalize(map[string]string{
		"vnp_TxnRef":    "1-ORD",
		"vnp_Amount":    "100",
		"vnp_OrderInfo": "a b&c",
	})

	assert.Equal(t, "vnp_Amount=100&vnp_OrderInfo=a+b%26c&vnp_TxnRef=1-ORD", got)
}

func TestSign_MatchesReferenceHMAC(t *testing.T) {
	s, err := NewSigner(testSecret)
	require.NoError(t, err)
	params := sampleParams()

	mac := hmac.New(sha512.New, []byte(testSecret))
	mac.Write([]byte(Canonicalize(params)))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, s.Sign(params))
	assert.Len(t, s.Sign(params), 128)
}

func TestVerify_RoundTrip(t *testing.T) {
	s, err := NewSigner(testSecret)
	require.NoError(t, err)
	params := sampleParams()
	sig := s.Sign(params)

	assert.True(t, s.Verify(params, sig))
	assert.True(t, s.Verify(params, strings.ToUpper(sig)))
}

func TestVerify_SingleCharacterTamper(t *testing.T) {
	s, err := NewSigner(testSecret)
	require.NoError(t, err)
	params := sampleParams()
	sig := s.Sign(params)

	for key, value := range sampleParams() {
		t.Run(key, func(t *testing.T) {
			tampered := sampleParams()
			last := value[len(value)-1]
			replacement := byte('0')
			if last == '0' {
				replacement = '1'
			}
			tampered[key] = value[:len(value)-1] + string(replacement)

			assert.False(t, s.Verify(tampered, sig))
		})
	}

	flipped := []byte(sig)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	assert.False(t, s.Verify(params, string(flipped)))
}

func TestVerify_WrongSecretOrGarbage(t *testing.T) {
	s1, _ := NewSigner(testSecret)
	s2, _ := NewSigner("another-secret")
	params := sampleParams()

	assert.False(t, s2.Verify(params, s1.Sign(params)))
	assert.False(t, s1.Verify(params, "not-hex"))
	assert.False(t, s1.Verify(params, ""))
}

func TestNewSigner_EmptySecret(t *testing.T) {
	_, err := NewSigner("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
