package retryable

// Policy allows you to predefine the wrap-time options for a retry run
// ahead of time and apply them using [WithPolicy]. Delay and backoff are
// call-time settings and have no Policy fields.
type Policy struct {
	// Total number of attempts, including the first call.
	// Default: 3
	Attempts int
	// Failure values that are never retried -- see [NoRetry]
	NoRetry []error
	// Default retry predicate -- see [Filter]
	Filter CallbackFn
	// Each allows you to run a function directly after each failure -- see [Each]
	Each func(Status)
}

// WithPolicy applies the settings in a [Policy] to a wrapped function,
// allowing you to reuse a set of options for multiple functions.
func WithPolicy(p Policy) Option {
	return func(o *opts) {
		if p.Attempts != 0 {
			Attempts(p.Attempts)(o)
		}
		o.noRetry = p.NoRetry
		o.callback = p.Filter
		o.eachFn = p.Each
	}
}
