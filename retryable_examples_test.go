package retryable_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"andy.dev/retryable"
)

var ErrIDontLike = errors.New("can't recover from this one")

var exampleTries = 0

func maybeAFatalError() error {
	exampleTries++
	if exampleTries == 3 {
		return ErrIDontLike
	}
	return fmt.Errorf("temporary failure")
}

func ExampleNoRetry() {
	fnToRetry := func() error {
		if err := maybeAFatalError(); err != nil {
			fmt.Printf("there was a problem: %v\n", err)
			return err
		}
		return nil
	}

	wrapped := retryable.Fn(fnToRetry, retryable.Attempts(10), retryable.NoRetry(ErrIDontLike))

	err := wrapped()
	if err != nil {
		fmt.Printf("output: %v\n", err)
	}

	if !retryable.Exhausted(err) {
		fmt.Println("didn't even make it to 10 tries")
	}
	// Output:
	// there was a problem: temporary failure
	// there was a problem: temporary failure
	// there was a problem: can't recover from this one
	// output: can't recover from this one
	// didn't even make it to 10 tries
}

func someFunction() error {
	return fmt.Errorf("some error")
}

func ExampleExhausted() {
	fnToRetry := func() error {
		if err := someFunction(); err != nil {
			fmt.Printf("there was a problem: %v\n", err)
			return err
		}
		return nil
	}

	wrapped := retryable.Fn(fnToRetry, retryable.Attempts(2))

	err := wrapped()
	if err != nil {
		fmt.Println(err)
	}

	if retryable.Exhausted(err) {
		fmt.Printf("looks like that was it, after %d retries\n", retryable.RetryCount(err))
	}
	// Output:
	// there was a problem: some error
	// there was a problem: some error
	// some error
	// looks like that was it, after 1 retries
}

type testLogger struct{}

func (testLogger) Printf(msg string, a ...any) {
	fmt.Printf(msg+"\n", a...)
}

func (testLogger) Println(a ...any) {
	fmt.Println(a...)
}

var log testLogger

func ExampleEach() {
	fnToRetry := func() error {
		if err := someFunction(); err != nil {
			return err
		}
		return nil
	}

	eachFn := func(s retryable.Status) {
		log.Printf("got error while retrying: %v (%s)", s.Err, s)
	}

	wrapped := retryable.Fn(fnToRetry, retryable.Attempts(3), retryable.Each(eachFn))

	if err := wrapped(); err != nil {
		log.Println(err)
	}
	// Output:
	// got error while retrying: some error (attempt 1/3)
	// got error while retrying: some error (attempt 2/3)
	// got error while retrying: some error (attempt 3/3)
	// some error
}

func ExampleCallback() {
	flagged := errors.New("flagged")

	wrapped := retryable.Fn(func() error {
		return flagged
	}, retryable.Attempts(5))

	err := wrapped(retryable.Callback(func(err error) bool {
		// retry anything except flagged failures
		return !errors.Is(err, flagged)
	}))

	fmt.Println(err)
	fmt.Println(retryable.RetryCount(err))
	// Output:
	// flagged
	// 0
}

func ExampleDelay() {
	eachFn := func(s retryable.Status) {
		log.Printf("%+s", s)
	}

	wrapped := retryable.Fn(someFunction, retryable.Each(eachFn))

	err := wrapped(
		retryable.Count(3),
		retryable.Delay(10*time.Millisecond),
		retryable.Backoff(2),
	)
	log.Println(err)
	// Output:
	// attempt 1/3 - next in 10ms
	// attempt 2/3 - next in 20ms
	// attempt 3/3 - next in 40ms
	// some error
}

func ExampleFnCtx_withCancelledContextCause() {
	ctx, cf := context.WithCancelCause(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cf(errors.New("I've changed my mind"))
	}()

	wrapped := retryable.FnCtx(func(ctx context.Context) error {
		return errors.New("I'll fail forever")
	}, retryable.Attempts(10))

	if err := wrapped(ctx, retryable.Delay(time.Minute)); err != nil {
		fmt.Println(err)
	}
	// Output:
	// I've changed my mind
}

func ExampleFnOutCtx() {
	wrapped := retryable.FnOutCtx(func(ctx context.Context) (string, error) {
		attempt := retryable.GetStatus(ctx).Attempt
		val := fmt.Sprintf("value from attempt %d", attempt)
		if attempt < 3 {
			return "", errors.New("not yet")
		}
		return val, nil
	}, retryable.Attempts(3))

	str, err := wrapped(context.Background())
	if err != nil {
		fmt.Println(err)
	}
	fmt.Printf("Got: %s", str)
	// Output:
	// Got: value from attempt 3
}

func ExampleFnInCtx() {
	wrapped := retryable.FnInCtx(func(ctx context.Context, str string) error {
		attempt := retryable.GetStatus(ctx).Attempt
		fmt.Printf("attempt %d with arg: %q\n", attempt, str)
		if attempt < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	if err := wrapped(context.Background(), "my argument"); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Success!")
	// Output:
	// attempt 1 with arg: "my argument"
	// attempt 2 with arg: "my argument"
	// attempt 3 with arg: "my argument"
	// Success!
}

var fetchHTTPCount = 0

func fetchHTTP(_ context.Context, url string) ([]byte, error) {
	fetchHTTPCount++
	if fetchHTTPCount < 2 {
		return nil, fmt.Errorf("HTTP error fetching %s", url)
	}
	return []byte(`{"status":"success"}`), nil
}

func ExampleFnIOCtx() {
	wrapped := retryable.FnIOCtx(fetchHTTP)

	val, err := wrapped(context.Background(), "http://my.site.com", retryable.Count(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s", val)
	// Output:
	// {"status":"success"}
}
