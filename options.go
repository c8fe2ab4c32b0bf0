package retryable

import (
	"errors"
	"time"
)

// Option represents a wrap-time retry setting, applied once at the point
// the function is wrapped.
type Option func(o *opts)

// CallOption represents a call-time retry setting. Call options are
// passed alongside the wrapped function's own arguments, are never
// forwarded to it, and take precedence over the corresponding wrap-time
// setting for that call only.
type CallOption func(o *opts)

// CallbackFn decides whether a failure should be retried. It is passed
// the error returned by the wrapped function and returns true to retry
// or false to stop the run and return the failure unmodified.
type CallbackFn func(error) bool

// Attempts sets the total number of attempts, including the first call.
// Values below 1 are treated as 1, meaning run once and never retry. If
// unset, it will default to DefaultAttempts (3).
func Attempts(n int) Option {
	return func(o *opts) {
		if n < 1 {
			n = 1
		}
		o.attempts = n
	}
}

// NoRetry sets the exclusion list. A failure matching any of errs, as
// reported by [errors.Is], is returned immediately and unmodified —
// first attempt or not, regardless of remaining attempts and regardless
// of what the retry predicate would decide.
//
// Failures identified by type rather than by sentinel value are better
// handled with a [Filter] predicate using [errors.As].
func NoRetry(errs ...error) Option {
	return func(o *opts) {
		o.noRetry = errs
	}
}

// Filter sets the default retry predicate. It is called with each
// failure that did not match the exclusion list; returning false stops
// the run. A call-time [Callback] overrides it. Defaults to nil, which
// retries every non-excluded failure.
func Filter(fn CallbackFn) Option {
	return func(o *opts) {
		o.callback = fn
	}
}

// Each allows you to set a function to be called directly after each
// failed attempt, before the retry decision is made. It is passed a
// [Status] value that you can use for logging or reporting. Defaults to
// nil, which will take no action.
func Each(eachFn func(Status)) Option {
	return func(o *opts) {
		o.eachFn = eachFn
	}
}

// Count overrides the total number of attempts, including the first
// call, for this call only. Values below 1 are treated as 1.
func Count(n int) CallOption {
	return func(o *opts) {
		if n < 1 {
			n = 1
		}
		o.attempts = n
	}
}

// Delay sets the wait before the first retry, for this call only.
// Negative values are treated as zero. If unset, it will default to
// DefaultDelay (0).
func Delay(d time.Duration) CallOption {
	return func(o *opts) {
		if d < 0 {
			d = 0
		}
		o.delay = d
	}
}

// Backoff sets the factor the wait is multiplied by after each retry,
// for this call only. Factors below 1 are treated as 1, i.e. a constant
// delay. If unset, it will default to DefaultBackoff (1).
func Backoff(factor float64) CallOption {
	return func(o *opts) {
		if factor < 1 {
			factor = 1
		}
		o.backoff = factor
	}
}

// Callback sets the retry predicate for this call only, overriding any
// wrap-time [Filter].
func Callback(fn CallbackFn) CallOption {
	return func(o *opts) {
		o.callback = fn
	}
}

func applyDefaults(ro *opts) {
	if ro.attempts < 1 {
		ro.attempts = DefaultAttempts
	}
	if ro.delay < 0 {
		ro.delay = DefaultDelay
	}
	if ro.backoff < 1 {
		ro.backoff = DefaultBackoff
	}
}

type opts struct {
	attempts int
	delay    time.Duration
	backoff  float64
	noRetry  []error
	callback CallbackFn
	eachFn   func(Status)
}

// excluded reports whether err matches the exclusion list.
func (o *opts) excluded(err error) bool {
	for i := range o.noRetry {
		if errors.Is(err, o.noRetry[i]) {
			return true
		}
	}
	return false
}
