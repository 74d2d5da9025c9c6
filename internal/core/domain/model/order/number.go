package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewNumber generates an external-facing order number from the submission
// instant: milliseconds since epoch plus a four-digit random suffix. The
// suffix keeps numbers unique when two orders land in the same millisecond.
//
// The order number is distinct from the internal order ID and is the
// reference passed to the payment provider.
func NewNumber(now time.Time) string {
	return fmt.Sprintf("%d%04d", now.UnixMilli(), rand.IntN(10000))
}
