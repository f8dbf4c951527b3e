package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hrms/internal/format"
	"hrms/internal/platform/metrics"
)

const JobHeadcount = "department_headcount"

// Recounter refreshes Department.EmployeeCount, reporting how many changed.
type Recounter interface {
	RecountHeadcount(ctx context.Context) (int, error)
}

type Service struct {
	Headcount Recounter
	Metrics   *metrics.Collector
	// Interval is the periodic recount; zero disables it.
	Interval time.Duration

	queue    chan job
	debounce *format.Debouncer[string]
	stopOnce sync.Once
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

// New builds the service. RequestHeadcount calls arriving within debounce of
// each other collapse into one recount.
func New(headcount Recounter, collector *metrics.Collector, interval, debounce time.Duration) *Service {
	s := &Service{
		Headcount: headcount,
		Metrics:   collector,
		Interval:  interval,
		queue:     make(chan job, 16),
	}
	s.debounce = format.NewDebouncer(debounce, func(reason string) {
		s.Enqueue(JobHeadcount, s.recount(reason))
	})
	return s
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Interval > 0 {
		go s.schedule(ctx, s.Interval)
	}
}

// RequestHeadcount schedules a debounced recount; employee writes call it.
func (s *Service) RequestHeadcount(reason string) {
	s.debounce.Call(reason)
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

func (s *Service) worker(ctx context.Context) {
	defer s.stopOnce.Do(s.debounce.Stop)
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	started := time.Now()
	details, err := j.Run(ctx)
	if s.Metrics != nil {
		s.Metrics.RecordJob(err)
	}
	if err == nil {
		slog.Debug("job completed", "jobType", j.Type, "durationMs", time.Since(started).Milliseconds(), "details", details)
	}
	return details, err
}

func (s *Service) schedule(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobHeadcount, s.recount("interval"))
		}
	}
}

func (s *Service) recount(reason string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		changed, err := s.Headcount.RecountHeadcount(ctx)
		return map[string]any{"reason": reason, "departmentsChanged": changed}, err
	}
}
