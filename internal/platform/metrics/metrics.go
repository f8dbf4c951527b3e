package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector keeps process-local counters for the /metrics endpoint.
type Collector struct {
	totalRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	serverErrors    atomic.Uint64
	totalDurationMs atomic.Uint64
	jobRuns         atomic.Uint64
	jobFailures     atomic.Uint64

	mu      sync.Mutex
	byRoute map[string]uint64
}

type Snapshot struct {
	RequestsTotal     uint64            `json:"requestsTotal"`
	ClientErrorsTotal uint64            `json:"clientErrorsTotal"`
	ServerErrorsTotal uint64            `json:"serverErrorsTotal"`
	AvgDurationMs     float64           `json:"avgDurationMs"`
	TotalDurationMs   uint64            `json:"totalDurationMs"`
	JobRunsTotal      uint64            `json:"jobRunsTotal"`
	JobFailuresTotal  uint64            `json:"jobFailuresTotal"`
	RequestsByRoute   map[string]uint64 `json:"requestsByRoute"`
}

func New() *Collector {
	return &Collector{byRoute: map[string]uint64{}}
}

// Record counts one request. route is the matched pattern ("GET /employees/{id}"),
// not the raw path, so the map stays bounded.
func (c *Collector) Record(route string, status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
	if route == "" {
		return
	}
	c.mu.Lock()
	c.byRoute[route]++
	c.mu.Unlock()
}

func (c *Collector) RecordJob(err error) {
	c.jobRuns.Add(1)
	if err != nil {
		c.jobFailures.Add(1)
	}
}

func (c *Collector) Snapshot() Snapshot {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	routes := make(map[string]uint64, len(c.byRoute))
	for route, n := range c.byRoute {
		routes[route] = n
	}
	c.mu.Unlock()

	return Snapshot{
		RequestsTotal:     total,
		ClientErrorsTotal: c.clientErrors.Load(),
		ServerErrorsTotal: c.serverErrors.Load(),
		AvgDurationMs:     avg,
		TotalDurationMs:   totalMs,
		JobRunsTotal:      c.jobRuns.Load(),
		JobFailuresTotal:  c.jobFailures.Load(),
		RequestsByRoute:   routes,
	}
}
