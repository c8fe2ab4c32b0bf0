package retryable

import (
	"context"
	"time"

	"andy.dev/retryable/backoff"
)

const (
	// DefaultAttempts is the total attempt budget, including the first
	// call, used when neither [Attempts] nor [Count] is given.
	DefaultAttempts = 3
	// DefaultDelay is the wait before the first retry when [Delay] is
	// not given.
	DefaultDelay = 0 * time.Second
	// DefaultBackoff is the delay growth factor when [Backoff] is not
	// given. 1 means the delay stays constant.
	DefaultBackoff = 1.0
)

// Fn wraps a function with the signature of:
//
//	func() error
//
// The returned function has the same calling convention, accepting only
// the optional [CallOption] settings. Its error is the ultimate error
// after all retries are complete, or nil in the case of a successful
// run. For more information on how functions will be retried and values
// returned, see the package documentation.
func Fn(fn func() error, options ...Option) func(...CallOption) error {
	w := FnCtx(func(context.Context) error {
		return fn()
	}, options...)
	return func(callOptions ...CallOption) error {
		return w(context.Background(), callOptions...)
	}
}

// FnOut wraps a function with the signature of:
//
//	func() (OUT, error)
//
// Where OUT is a return value of any type.
//
// Each call of the wrapped form will be retried following the rules
// described in the package documentation, and returns the values of the
// first successful attempt or the final unsuccessful one.
func FnOut[OUT any](fn func() (OUT, error), options ...Option) func(...CallOption) (OUT, error) {
	w := FnOutCtx(func(context.Context) (OUT, error) {
		return fn()
	}, options...)
	return func(callOptions ...CallOption) (OUT, error) {
		return w(context.Background(), callOptions...)
	}
}

// FnIn wraps a function with the signature of:
//
//	func(IN) error
//
// Where IN is an input argument of any type. The wrapped form takes the
// argument followed by any [CallOption] settings, and forwards the
// argument untouched to fn on every attempt:
//
//	wrapped := retryable.FnIn(fnToRetry)
//	wrapped(<argument>, <call options>...)
func FnIn[IN any](fn func(IN) error, options ...Option) func(IN, ...CallOption) error {
	w := FnInCtx(func(_ context.Context, arg IN) error {
		return fn(arg)
	}, options...)
	return func(arg IN, callOptions ...CallOption) error {
		return w(context.Background(), arg, callOptions...)
	}
}

// FnInRefr wraps a function with the signature of:
//
//	func(IN) error
//
// Where IN is an input argument of any type. The argument passed to the
// wrapped form is used for the first attempt and will be refreshed using
// refreshFn for subsequent retries, if needed.
func FnInRefr[IN any](fn func(IN) error, refreshFn RefreshFn[IN], options ...Option) func(IN, ...CallOption) error {
	w := FnInCtxRefr(func(_ context.Context, arg IN) error {
		return fn(arg)
	}, refreshFn, options...)
	return func(arg IN, callOptions ...CallOption) error {
		return w(context.Background(), arg, callOptions...)
	}
}

// FnIO wraps a function with the signature of:
//
//	func(IN) (OUT, error)
//
// Where IN is an input argument of any type and OUT is a return value of
// any type. It is a combination of [FnIn] and [FnOut].
func FnIO[IN, OUT any](fn func(IN) (OUT, error), options ...Option) func(IN, ...CallOption) (OUT, error) {
	w := FnIOCtx(func(_ context.Context, arg IN) (OUT, error) {
		return fn(arg)
	}, options...)
	return func(arg IN, callOptions ...CallOption) (OUT, error) {
		return w(context.Background(), arg, callOptions...)
	}
}

// FnIORefr wraps a function with the signature of:
//
//	func(IN) (OUT, error)
//
// Where IN is an input argument of any type and OUT is a return value of
// any type. The argument passed to the wrapped form is used for the
// first attempt and will be refreshed using refreshFn for subsequent
// retries, if needed. It is a combination of [FnInRefr] and [FnOut].
func FnIORefr[IN, OUT any](fn func(IN) (OUT, error), refreshFn RefreshFn[IN], options ...Option) func(IN, ...CallOption) (OUT, error) {
	w := FnIOCtxRefr(func(_ context.Context, arg IN) (OUT, error) {
		return fn(arg)
	}, refreshFn, options...)
	return func(arg IN, callOptions ...CallOption) (OUT, error) {
		return w(context.Background(), arg, callOptions...)
	}
}

// FnCtx wraps a function with the signature of:
//
//	func(context.Context) error
//
// The context given to each call of the wrapped form is passed through
// to fn, annotated with the current [Status], and cancels a pending
// backoff wait. On cancellation, context.Cause will be called on the
// context to get the underlying error, if set.
func FnCtx(fn func(context.Context) error, options ...Option) func(context.Context, ...CallOption) error {
	o := wrapOpts(options)
	return func(ctx context.Context, callOptions ...CallOption) error {
		return run(ctx, fn, o, callOptions)
	}
}

// FnOutCtx wraps a function with the signature of:
//
//	func(context.Context) (OUT, error)
//
// Where OUT is a return value of any type. It is the context-aware form
// of [FnOut].
func FnOutCtx[OUT any](fn func(context.Context) (OUT, error), options ...Option) func(context.Context, ...CallOption) (OUT, error) {
	o := wrapOpts(options)
	return func(ctx context.Context, callOptions ...CallOption) (OUT, error) {
		var zero, val OUT
		err := run(ctx, func(ictx context.Context) error {
			var fnErr error
			val, fnErr = fn(ictx)
			return fnErr
		}, o, callOptions)
		if err != nil {
			return zero, err
		}
		return val, nil
	}
}

// FnInCtx wraps a function with the signature of:
//
//	func(context.Context, IN) error
//
// Where IN is an input argument of any type. It is the context-aware
// form of [FnIn].
func FnInCtx[IN any](fn func(context.Context, IN) error, options ...Option) func(context.Context, IN, ...CallOption) error {
	o := wrapOpts(options)
	return func(ctx context.Context, arg IN, callOptions ...CallOption) error {
		return run(ctx, func(ictx context.Context) error {
			return fn(ictx, arg)
		}, o, callOptions)
	}
}

// FnInCtxRefr wraps a function with the signature of:
//
//	func(context.Context, IN) error
//
// Where IN is an input argument of any type. The argument passed to the
// wrapped form is used for the first attempt and will be refreshed using
// refreshFn for subsequent retries, if needed.
func FnInCtxRefr[IN any](fn func(context.Context, IN) error, refreshFn RefreshFn[IN], options ...Option) func(context.Context, IN, ...CallOption) error {
	o := wrapOpts(options)
	return func(ctx context.Context, arg IN, callOptions ...CallOption) error {
		cur := arg
		return run(ctx, func(ictx context.Context) error {
			err := fn(ictx, cur)
			if err != nil && refreshFn != nil {
				nArg, refreshErr := refreshFn()
				if refreshErr != nil {
					return errRefresh(refreshErr, err)
				}
				cur = nArg
			}
			return err
		}, o, callOptions)
	}
}

// FnIOCtx wraps a function with the signature of:
//
//	func(context.Context, IN) (OUT, error)
//
// Where IN is an input argument of any type and OUT is a return value of
// any type. It is a combination of [FnInCtx] and [FnOutCtx].
func FnIOCtx[IN, OUT any](fn func(context.Context, IN) (OUT, error), options ...Option) func(context.Context, IN, ...CallOption) (OUT, error) {
	o := wrapOpts(options)
	return func(ctx context.Context, arg IN, callOptions ...CallOption) (OUT, error) {
		var zero, val OUT
		err := run(ctx, func(ictx context.Context) error {
			var fnErr error
			val, fnErr = fn(ictx, arg)
			return fnErr
		}, o, callOptions)
		if err != nil {
			return zero, err
		}
		return val, nil
	}
}

// FnIOCtxRefr wraps a function with the signature of:
//
//	func(context.Context, IN) (OUT, error)
//
// Where IN is an input argument of any type and OUT is a return value of
// any type. The argument passed to the wrapped form is used for the
// first attempt and will be refreshed using refreshFn for subsequent
// retries, if needed. It is a combination of [FnInCtxRefr] and
// [FnOutCtx].
func FnIOCtxRefr[IN, OUT any](fn func(context.Context, IN) (OUT, error), refreshFn RefreshFn[IN], options ...Option) func(context.Context, IN, ...CallOption) (OUT, error) {
	o := wrapOpts(options)
	return func(ctx context.Context, arg IN, callOptions ...CallOption) (OUT, error) {
		var zero, val OUT
		cur := arg
		err := run(ctx, func(ictx context.Context) error {
			var fnErr error
			val, fnErr = fn(ictx, cur)
			if fnErr != nil && refreshFn != nil {
				nArg, refreshErr := refreshFn()
				if refreshErr != nil {
					return errRefresh(refreshErr, fnErr)
				}
				cur = nArg
			}
			return fnErr
		}, o, callOptions)
		if err != nil {
			return zero, err
		}
		return val, nil
	}
}

// RefreshFn is a function that can be passed to any of the -Refr
// wrappers to recreate or reset the input argument to the function
// between retries. If this function returns an error, the run stops and
// the error is wrapped in a [*RefreshError] value, along with the
// underlying error that triggered the retry.
type RefreshFn[T any] func() (T, error)

// Halted returns true if the run was stopped by the wrapped function
// returning an error wrapped with [Halt].
func Halted(e error) bool {
	_, ok := e.(*haltErr)
	return ok
}

// Halt lets the wrapped function flag a failure as non-retryable from
// within the retry loop itself, as an alternative to the [NoRetry]
// exclusion list. Simply:
//
//	return retryable.Halt(err)
//
// To stop the run immediately.
func Halt(e error) *haltErr {
	return &haltErr{e}
}

func wrapOpts(options []Option) *opts {
	o := &opts{}
	for _, opt := range options {
		opt(o)
	}
	return o
}

// run is the engine all of the wrappers funnel into. Call options are
// layered over a copy of the wrap-time settings, so concurrent calls of
// the same wrapped function share nothing.
func run(ctx context.Context, fn func(context.Context) error, wrapped *opts, callOptions []CallOption) error {
	cfg := *wrapped
	for _, opt := range callOptions {
		opt(&cfg)
	}
	applyDefaults(&cfg)
	next := backoff.New(cfg.delay, cfg.backoff)
	t := time.NewTimer(time.Hour)
	t.Stop()
	retries := 0
	var lastErr error
	for {
		// prefetch the next delay so that the user can see it in the status.
		delay := next()
		status := Status{
			Attempt:   retries + 1,
			Attempts:  cfg.attempts,
			Err:       lastErr,
			NextDelay: delay,
		}
		rctx := context.WithValue(ctx, retryCtxKey, status)
		lastErr = fn(rctx)
		if lastErr == nil {
			return nil
		}
		status.Err = lastErr
		if cfg.eachFn != nil {
			cfg.eachFn(status)
		}
		switch {
		case cfg.excluded(lastErr):
			return lastErr
		case Halted(lastErr):
			return lastErr
		case isRefreshError(lastErr):
			return lastErr
		case cfg.callback != nil && !cfg.callback(lastErr):
			return lastErr
		case retries+1 >= cfg.attempts:
			if retries == 0 {
				return lastErr
			}
			return errExhausted(lastErr, retries)
		}
		t.Reset(delay)
		select {
		case <-ctx.Done():
			if !t.Stop() {
				<-t.C
			}
			return context.Cause(ctx)
		case <-t.C:
		}
		retries++
	}
}
