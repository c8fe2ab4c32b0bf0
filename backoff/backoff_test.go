package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeometricSeries(t *testing.T) {
	next := New(100*time.Millisecond, 2)
	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
	}
	for _, w := range want {
		assert.Equal(t, w, next())
	}
}

func TestConstantDelay(t *testing.T) {
	next := New(50*time.Millisecond, 1)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 50*time.Millisecond, next())
	}
}

func TestClamping(t *testing.T) {
	// negative initial delays and shrinking factors are normalized
	next := New(-5*time.Millisecond, 0.5)
	assert.Equal(t, time.Duration(0), next())
	assert.Equal(t, time.Duration(0), next())

	next = New(time.Second, 0)
	assert.Equal(t, time.Second, next())
	assert.Equal(t, time.Second, next())
}

func TestOverflowSaturates(t *testing.T) {
	next := New(time.Hour, 1e9)
	assert.Equal(t, time.Hour, next())
	for i := 0; i < 5; i++ {
		d := next()
		assert.GreaterOrEqual(t, d, time.Hour)
	}
	// once past the int64 range, the iterator pins to the maximum
	assert.Equal(t, time.Duration(math.MaxInt64), next())
}
