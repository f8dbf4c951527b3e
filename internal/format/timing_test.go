package format

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebounceRunsLastCallOnce(t *testing.T) {
	var calls atomic.Int32
	got := make(chan int, 4)

	debounced := Debounce(100*time.Millisecond, func(v int) {
		calls.Add(1)
		got <- v
	})

	debounced(1)
	time.Sleep(20 * time.Millisecond)
	debounced(2)
	time.Sleep(20 * time.Millisecond)
	debounced(3)

	select {
	case v := <-got:
		assert.Equal(t, 3, v)
	case <-time.After(time.Second):
		t.Fatal("debounced function never ran")
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncerStop(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func(struct{}) { calls.Add(1) })

	d.Call(struct{}{})
	d.Stop()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(0), calls.Load())
}

func TestDebounceSeparateWindows(t *testing.T) {
	got := make(chan string, 4)
	debounced := Debounce(20*time.Millisecond, func(v string) { got <- v })

	debounced("first")
	require.Equal(t, "first", <-got)
	debounced("second")
	require.Equal(t, "second", <-got)
}

func TestSleep(t *testing.T) {
	start := time.Now()
	require.NoError(t, Sleep(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}
