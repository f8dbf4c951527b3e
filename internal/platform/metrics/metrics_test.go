package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record("GET /employees", 200, 10*time.Millisecond)
	c.Record("GET /employees", 404, 20*time.Millisecond)
	c.Record("POST /leaves", 500, 30*time.Millisecond)
	c.RecordJob(nil)
	c.RecordJob(errors.New("boom"))

	snap := c.Snapshot()
	if snap.RequestsTotal != 3 || snap.ClientErrorsTotal != 1 || snap.ServerErrorsTotal != 1 {
		t.Fatalf("unexpected counters: %+v", snap)
	}
	if snap.AvgDurationMs != 20 {
		t.Fatalf("expected avg 20ms, got %v", snap.AvgDurationMs)
	}
	if snap.RequestsByRoute["GET /employees"] != 2 {
		t.Fatalf("unexpected route counts: %v", snap.RequestsByRoute)
	}
	if snap.JobRunsTotal != 2 || snap.JobFailuresTotal != 1 {
		t.Fatalf("unexpected job counters: %+v", snap)
	}
}

func TestCollectorConcurrentRecord(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Record("GET /healthz", 200, time.Millisecond)
		}()
	}
	wg.Wait()
	if got := c.Snapshot().RequestsByRoute["GET /healthz"]; got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}
