package retryable

import (
	"context"
	"fmt"
	"time"
)

type retryCtxKeyT string

const (
	retryCtxKey retryCtxKeyT = "retryable"
)

// GetStatus can be used to retrieve information about the current retry
// loop from within the function being retried, as opposed to setting a
// callback with [Each].
// It will return Status{} if not called in a retry context, so make sure
// the function is actually being run under a wrapper before relying on
// its fields.
func GetStatus(ctx context.Context) Status {
	status := ctx.Value(retryCtxKey)
	if status == nil {
		return Status{}
	}
	return status.(Status)
}

// Status represents the state of the current retry loop.
type Status struct {
	// Attempt is the 1-based number of the current attempt.
	Attempt int
	// Attempts is the total attempt budget for this call.
	Attempts int
	// Err is the failure from the previous attempt, or nil on the first.
	// In a Status passed to an [Each] hook, it is the failure of the
	// attempt that just ran.
	Err error
	// NextDelay is the wait before the next retry, should this attempt
	// fail.
	NextDelay time.Duration
}

// String implements fmt.Stringer
func (s Status) String() string {
	if s.Attempts <= 0 {
		return fmt.Sprintf("attempt %d", s.Attempt)
	}
	return fmt.Sprintf("attempt %d/%d", s.Attempt, s.Attempts)
}

// Format implements fmt.Formatter it supports the %s and %q print verbs.
// Output is flag-dependent:
//
//	%s -  "attempt #"
//	%+s - "attempt # - next in <duration>"
//
// Where '#' is the attempt number as an integer starting from '1',
// optionally followed by `/#` and the total attempt budget if
// [Attempts] or [Count] is set.
func (s Status) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'q':
		str := s.String()
		if state.Flag('+') {
			str = fmt.Sprintf("%s - next in %v", str, shortNext(s.NextDelay))
		}
		if verb == 'q' {
			str = fmt.Sprintf("%q", str)
		}
		fmt.Fprint(state, str)
	}
}

// Next returns a time.Time value representing the approximate time the
// next iteration will occur, assuming it has just failed.
func (s Status) Next() time.Time {
	return time.Now().Add(s.NextDelay)
}

// shortNext rounds a delay for display: sub-second values round to the
// millisecond, anything longer to the second.
func shortNext(d time.Duration) time.Duration {
	if d < time.Second {
		return d.Round(time.Millisecond)
	}
	return d.Round(time.Second)
}
