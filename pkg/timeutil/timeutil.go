// Package timeutil provides duration formatting for debug output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration in the compact style of the npm debug
// package: microseconds below 1ms, whole milliseconds below 1s, then
// seconds and minutes with one decimal.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
}
