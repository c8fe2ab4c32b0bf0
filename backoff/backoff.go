package backoff

import (
	"math"
	"time"
)

// maxintf serves as a backstop against float64->int64 overflow
const maxintf = float64(math.MaxInt64) - 1

// Iterator yields the successive waits of a retry run. Each call returns
// the delay to use before the next retry.
type Iterator func() time.Duration

// New returns an Iterator producing a geometric delay series: the first
// call yields initial, and every call after that yields the previous
// value multiplied by factor. A negative initial delay is treated as
// zero and a factor below 1 as 1, so the series never shrinks.
func New(initial time.Duration, factor float64) Iterator {
	if initial < 0 {
		initial = 0
	}
	if factor < 1 {
		factor = 1
	}
	cur := float64(initial)
	return func() time.Duration {
		out := cur
		cur *= factor
		if out > maxintf {
			return time.Duration(math.MaxInt64)
		}
		return time.Duration(out)
	}
}
