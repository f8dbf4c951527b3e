package format

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into one trailing call made wait after
// the last one, with the last call's argument.
type Debouncer[T any] struct {
	wait time.Duration
	fn   func(T)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewDebouncer[T any](wait time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{wait: wait, fn: fn}
}

// Call cancels any pending call and schedules fn(arg) after the wait.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		latest := seq == d.seq
		if latest {
			d.timer = nil
		}
		d.mu.Unlock()
		if latest {
			d.fn(arg)
		}
	})
}

// Stop drops the pending call, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

// Debounce wraps fn so that only the last call in any wait-long window runs.
func Debounce[T any](wait time.Duration, fn func(T)) func(T) {
	return NewDebouncer(wait, fn).Call
}

// Sleep blocks for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
