/*
Package retryable is an ergonomic retry wrapper for Go.

It takes a function that may fail and returns a function with the same
calling convention that transparently retries it: a bounded number of
attempts, a multiplicative backoff delay between them, and a per-failure
decision driven by an exclusion list and an optional retry predicate.

# Ergonomic?

The API is intended to be "ergonomic" in that it attempts to be intuitive
to use and easy to integrate into existing code, without a lot of
cognitive load.

To this end, it has the following features:
  - Declarative syntax to wrap existing code once and call it anywhere.
  - Short, memorable names for wrapping functions.
  - A split between wrap-time [Option] values (attempt budget, exclusion
    list, default predicate) and call-time [CallOption] values (attempt
    override, delay, backoff, per-call predicate), with sensible
    defaults, plus a [Policy] type to predeclare a set of wrap-time
    options for re-use.

Call-time settings always win over wrap-time settings, which win over
the package defaults. They travel as their own variadic argument, so
they never collide with -- and are never forwarded to -- the wrapped
function's own arguments.

# Supported Function Types

The following function types are supported:

	|           Function Signature           |      Wrapper(s)      |
	|----------------------------------------|----------------------|
	| func() error                           | Fn                   |
	| func()(OUT, error)                     | FnOut                |
	| func(IN) error                         | FnIn, FnInRefr       |
	| func(IN) (OUT, error)                  | FnIO, FnIORefr       |
	| func(context.Context) error            | FnCtx                |
	| func(context.Context)(OUT, error)      | FnOutCtx             |
	| func(context.Context, IN) error        | FnInCtx, FnInCtxRefr |
	| func(context.Context, IN) (OUT, error) | FnIOCtx, FnIOCtxRefr |

# Retry Workflow

A wrapped function is run until one of the following conditions occurs:
  - It returns successfully with a nil error value.
  - Its failure matches the [NoRetry] exclusion list. The failure is
    returned immediately and unmodified, first attempt or not.
  - Its failure is rejected by the retry predicate set with [Filter] or
    [Callback]. The failure is returned unmodified.
  - It is halted by returning an error wrapped with [Halt].
  - The attempt budget is exhausted. If at least one retry ran, the
    final failure is returned wrapped in an [*ExhaustedError] recording
    the retry count; with a budget of one the raw failure is returned.
  - The context is cancelled during a backoff wait (Ctx variants).
    context.Cause will be called on the context to get the underlying
    error, if set.
  - The refresh function, if used, fails, returning a [*RefreshError].

The exclusion list is always consulted before the predicate: an excluded
failure is never retried no matter what the predicate would say.

# Delays

The first attempt runs immediately. The wait before the first retry is
set with [Delay] (default 0), and each subsequent wait is the previous
one multiplied by the [Backoff] factor (default 1, i.e. constant delay).
Delay and backoff are call-time settings only.
*/
package retryable
