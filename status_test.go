package retryable

import (
	"fmt"
	"testing"
	"time"
)

func TestShortNext(t *testing.T) {
	test := func(dur, want string) {
		t.Helper()
		dv, err := time.ParseDuration(dur)
		if err != nil {
			t.Fatalf("invalid duration %q: %v", dur, err)
		}
		got := fmt.Sprintf("%v", shortNext(dv))
		if got != want {
			t.Errorf("want: %s, got %s", want, got)
		}
	}
	test("0.5s", "500ms")
	test("0.4s", "400ms")
	test("1.4s", "1s")
	test("1.90s", "2s")
	test("66.3s", "1m6s")
	test("3661.3s", "1h1m1s")
}

func TestStatusString(t *testing.T) {
	s := Status{Attempt: 2, Attempts: 5}
	if got := s.String(); got != "attempt 2/5" {
		t.Errorf("want: attempt 2/5, got %s", got)
	}
	s.Attempts = 0
	if got := s.String(); got != "attempt 2" {
		t.Errorf("want: attempt 2, got %s", got)
	}
	s = Status{Attempt: 1, Attempts: 3, NextDelay: 1900 * time.Millisecond}
	if got := fmt.Sprintf("%+s", s); got != "attempt 1/3 - next in 2s" {
		t.Errorf("want: attempt 1/3 - next in 2s, got %s", got)
	}
}
