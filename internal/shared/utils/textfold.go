package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldASCII strips Vietnamese diacritics ("Thanh toán đơn" -> "Thanh toan don").
// Gateways and bank memo fields only accept unaccented text.
func FoldASCII(s string) string {
	s = strings.NewReplacer("đ", "d", "Đ", "D").Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// KeepChars folds s to ASCII and drops every rune not accepted by allowed,
// collapsing runs of spaces. The result is truncated to max runes when max > 0.
func KeepChars(s string, allowed func(r rune) bool, max int) string {
	folded := FoldASCII(s)
	var b strings.Builder
	lastSpace := true
	for _, r := range folded {
		if r == ' ' || r == '\t' || r == '\n' {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		if allowed(r) {
			b.WriteRune(r)
			lastSpace = false
		}
	}
	out := strings.TrimSpace(b.String())
	if max > 0 && len(out) > max {
		out = strings.TrimSpace(out[:max])
	}
	return out
}

// IsAlphanumeric accepts ASCII letters and digits.
func IsAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
