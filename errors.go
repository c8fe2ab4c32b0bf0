package retryable

import (
	"errors"
	"fmt"
)

// ExhaustedError is the failure surfaced after the attempt budget is
// consumed without success. It carries the final failure plus the number
// of retries that were performed. Error reports the underlying failure's
// message unchanged, and Unwrap keeps [errors.Is] and [errors.As]
// matching the underlying kind, so callers that pattern-match on the
// failure behave exactly as they would unwrapped.
//
// A run that performed no retries at all never produces an
// *ExhaustedError; the original failure is returned as-is.
type ExhaustedError struct {
	err     error
	retries int
}

// Error implements the error interface.
func (ee *ExhaustedError) Error() string {
	return ee.err.Error()
}

// Unwrap allows an *ExhaustedError to work with [errors.Is] and [errors.As].
func (ee *ExhaustedError) Unwrap() error {
	return ee.err
}

// RetryCount returns the number of retries performed before giving up,
// not counting the original attempt.
func (ee *ExhaustedError) RetryCount() int {
	return ee.retries
}

// Exhausted returns true if the error is the final result after all tries.
func Exhausted(e error) bool {
	var ee *ExhaustedError
	return errors.As(e, &ee)
}

// RetryCount returns the number of retries recorded on the error, or 0
// if the error carries no retry annotation: a failure surfaced before
// any retry ran, or an error from outside a retry run entirely.
func RetryCount(e error) int {
	var ee *ExhaustedError
	if errors.As(e, &ee) {
		return ee.retries
	}
	return 0
}

// errExhausted is a helper to create an *ExhaustedError
func errExhausted(e error, retries int) *ExhaustedError {
	return &ExhaustedError{err: e, retries: retries}
}

type haltErr struct {
	err error
}

func (he *haltErr) Error() string {
	return he.err.Error()
}

func (he *haltErr) Unwrap() error {
	return he.err
}

// RefreshError will be returned if a [RefreshFn] returns an error. The
// underlying error that caused the retry will be combined with this error
// using [errors.Join].
// If you would like to inspect just the original error, you can use
// [errors.As] to get the *RefreshError value and call the [RetryErr]
// Method.
type RefreshError struct {
	err      error
	retryErr error
}

// Error implements the error interface.
func (re *RefreshError) Error() string {
	return fmt.Sprintf("%s\n%s", re.err, re.retryErr)
}

// Unwrap allows a *RefreshError to work with [errors.Is] and [errors.As]
func (re *RefreshError) Unwrap() []error {
	return []error{re.err, re.retryErr}
}

// RetryErr returns the error that caused the function to retry before
// the RefreshFn failed.
func (re *RefreshError) RetryErr() error {
	return re.retryErr
}

// errRefresh is a helper to create a *RefreshError
func errRefresh(refreshErr, retryErr error) *RefreshError {
	return &RefreshError{
		err:      errors.Join(refreshErr, retryErr),
		retryErr: retryErr,
	}
}

func isRefreshError(e error) bool {
	var re *RefreshError
	return errors.As(e, &re)
}
