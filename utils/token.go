package utils

import (
	"fmt"
	"time"
)

// OrderToken builds a timestamp-based order identifier, e.g. ORD-1735689600123
func OrderToken(at time.Time) string {
	return fmt.Sprintf("ORD-%d", at.UnixMilli())
}
