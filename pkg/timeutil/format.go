// Package timeutil converts between tick counts and wall-clock durations
// and formats them for the dashboard.
package timeutil

import (
	"fmt"
	"time"
)

// Ticks returns the wall-clock length of n ticks.
func Ticks(n int, tick time.Duration) time.Duration {
	return time.Duration(n) * tick
}

// FormatSeconds formats d as fixed-point seconds with two decimals.
// Examples: "0.25s", "1.00s", "16.00s"
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
