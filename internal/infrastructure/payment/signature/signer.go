// Package signature implements the HMAC-SHA512 request signing used by
// VNPAY-style gateways: parameters are canonicalized (keys sorted ascending,
// keys and values query-escaped, joined k=v&k=v) and signed with a merchant
// secret. The signature is lowercase hex.
package signature

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/url"
	"sort"
	"strings"
)

var ErrEmptySecret = errors.New("signing secret must not be empty")

type Signer struct {
	secret []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Canonicalize builds the string that is signed. Two parameter sets with the
// same content always produce the same string regardless of input order.
func Canonicalize(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}

// Sign returns hex(HMAC-SHA512(secret, Canonicalize(params))).
func (s *Signer) Sign(params map[string]string) string {
	return hex.EncodeToString(s.mac(Canonicalize(params)))
}

// Verify reports whether signature matches params. The comparison is
// constant-time and accepts either hex case.
func (s *Signer) Verify(params map[string]string, signature string) bool {
	got, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(signature)))
	if err != nil || len(got) != sha512.Size {
		return false
	}
	return hmac.Equal(got, s.mac(Canonicalize(params)))
}

func (s *Signer) mac(data string) []byte {
	h := hmac.New(sha512.New, s.secret)
	h.Write([]byte(data))
	return h.Sum(nil)
}
