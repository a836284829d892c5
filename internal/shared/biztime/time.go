// Package biztime provides the business timezone used by the storefront.
// Storage and transport use UTC; the business zone (Asia/Ho_Chi_Minh by
// default) is used for gateway timestamps and customer-facing display.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Ho_Chi_Minh"

	// GatewayLayout is the compact timestamp layout used by VNPAY (yyyyMMddHHmmss).
	GatewayLayout = "20060102150405"

	// DisplayLayout is used on receipts.
	DisplayLayout = "02/01/2006 15:04"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
		if initErr != nil {
			// tzdata may be missing in minimal images; Vietnam has no DST.
			bizLocation = time.FixedZone("ICT", 7*60*60)
		}
	})
	return initErr
}

// Location returns the business timezone location, initializing the default on first use.
func Location() *time.Location {
	if bizLocation == nil {
		_ = Init("")
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatGateway renders t in the business zone using GatewayLayout.
func FormatGateway(t time.Time) string {
	return t.In(Location()).Format(GatewayLayout)
}

// ParseGateway parses a GatewayLayout timestamp in the business zone and returns UTC.
func ParseGateway(s string) (time.Time, error) {
	t, err := time.ParseInLocation(GatewayLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid gateway timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatDisplay formats a UTC time for receipts in the business zone.
func FormatDisplay(t time.Time) string {
	return t.In(Location()).Format(DisplayLayout)
}
