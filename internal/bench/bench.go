// Package bench times expensive steps against an injectable clock.
package bench

import (
	"time"

	"github.com/coder/quartz"
)

// Measure runs exec and returns how long it took according to clock.
func Measure(clock quartz.Clock, exec func()) time.Duration {
	start := clock.Now()
	exec()
	return clock.Since(start)
}

// Rate returns how many items per second were processed in elapsed.
func Rate(items int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(items) / elapsed.Seconds()
}
