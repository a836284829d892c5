// Package qrcode builds VietQR (EMVCo merchant-presented) payloads and
// renders them through the remote VietQR image service.
package qrcode

import (
	"fmt"
	"strings"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/shared/utils"
)

// EMVCo tag ids used by VietQR.
const (
	tagPayloadFormat     = "00"
	tagInitiationMethod  = "01"
	tagMerchantAccount   = "38"
	tagCurrency          = "53"
	tagAmount            = "54"
	tagCountry           = "58"
	tagAdditionalData    = "62"
	tagCRC               = "63"
	subTagGUID           = "00"
	subTagBeneficiary    = "01"
	subTagService        = "02"
	subTagAcquirer       = "00"
	subTagConsumer       = "01"
	subTagPurpose        = "08"
	payloadFormatVersion = "01"
	initiationStatic     = "11"
	initiationDynamic    = "12"
	napasGUID            = "A000000727"
	serviceToAccount     = "QRIBFTTA"
	currencyVND          = "704"
	countryVN            = "VN"
)

// MaxDescriptionLen is the longest transfer memo accepted by most banking apps.
const MaxDescriptionLen = 25

// PayloadParams is the input for BuildPayload.
type PayloadParams struct {
	BankBIN       string
	AccountNumber string
	Amount        vo.Money
	Description   string
}

// BuildPayload encodes a VietQR transfer payload. A zero amount produces a
// static code that lets the payer type the amount.
func BuildPayload(p PayloadParams) (string, error) {
	if len(p.BankBIN) != 6 || !isDigits(p.BankBIN) {
		return "", fmt.Errorf("bank BIN must be 6 digits, got %q", p.BankBIN)
	}
	if p.AccountNumber == "" || len(p.AccountNumber) > 19 {
		return "", fmt.Errorf("account number must be 1-19 characters")
	}
	if p.Amount.IsNegative() || !p.Amount.IsWholeDong() {
		return "", fmt.Errorf("amount must be a non-negative whole number of dong, got %s", p.Amount)
	}

	beneficiary := tlv(subTagAcquirer, p.BankBIN) + tlv(subTagConsumer, p.AccountNumber)
	merchant := tlv(subTagGUID, napasGUID) + tlv(subTagBeneficiary, beneficiary) + tlv(subTagService, serviceToAccount)

	var b strings.Builder
	b.WriteString(tlv(tagPayloadFormat, payloadFormatVersion))
	if p.Amount.IsPositive() {
		b.WriteString(tlv(tagInitiationMethod, initiationDynamic))
	} else {
		b.WriteString(tlv(tagInitiationMethod, initiationStatic))
	}
	b.WriteString(tlv(tagMerchantAccount, merchant))
	b.WriteString(tlv(tagCurrency, currencyVND))
	if p.Amount.IsPositive() {
		b.WriteString(tlv(tagAmount, p.Amount.Decimal().StringFixed(0)))
	}
	b.WriteString(tlv(tagCountry, countryVN))
	if desc := SanitizeDescription(p.Description); desc != "" {
		b.WriteString(tlv(tagAdditionalData, tlv(subTagPurpose, desc)))
	}

	// the checksum covers its own tag and length
	b.WriteString(tagCRC + "04")
	b.WriteString(fmt.Sprintf("%04X", CRC16(b.String())))
	return b.String(), nil
}

// SanitizeDescription folds the memo to unaccented letters, digits and
// spaces, truncated to MaxDescriptionLen.
func SanitizeDescription(s string) string {
	return utils.KeepChars(s, utils.IsAlphanumeric, MaxDescriptionLen)
}

func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// CRC16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) as required by EMVCo.
func CRC16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
