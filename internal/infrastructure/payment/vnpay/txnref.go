package vnpay

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTxnRef builds the merchant reference "<orderID>-<orderCode>". It is
// deterministic so a retried redirect maps to the same order.
func FormatTxnRef(orderID uint, orderCode string) string {
	return fmt.Sprintf("%d-%s", orderID, orderCode)
}

// ParseTxnRef splits a reference built by FormatTxnRef.
func ParseTxnRef(ref string) (uint, string, error) {
	idPart, code, ok := strings.Cut(ref, "-")
	if !ok || code == "" {
		return 0, "", fmt.Errorf("invalid txn ref %q", ref)
	}
	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil || id == 0 {
		return 0, "", fmt.Errorf("invalid txn ref %q", ref)
	}
	return uint(id), code, nil
}
