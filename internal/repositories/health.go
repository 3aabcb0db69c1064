package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

const defaultProbeTimeout = 1500 * time.Millisecond

// HealthStatus summarises a probe or report outcome.
type HealthStatus string

const (
	HealthStatusOK       HealthStatus = "ok"
	HealthStatusDegraded HealthStatus = "degraded"
	HealthStatusError    HealthStatus = "error"
)

// HealthCheck is a single named readiness probe.
type HealthCheck struct {
	Name    string
	Timeout time.Duration
	Check   func(context.Context) error
}

// HealthCheckResult records one probe outcome.
type HealthCheckResult struct {
	Status    HealthStatus  `json:"status"`
	Detail    string        `json:"detail,omitempty"`
	Latency   time.Duration `json:"latency"`
	CheckedAt time.Time     `json:"checkedAt"`
}

// HealthReport aggregates all probe outcomes.
type HealthReport struct {
	Status      HealthStatus                 `json:"status"`
	Checks      map[string]HealthCheckResult `json:"checks"`
	GeneratedAt time.Time                    `json:"generatedAt"`
}

// HealthOption customises NewHealthRepository.
type HealthOption func(*healthRepository)

// WithHealthClock injects a clock, primarily for tests.
func WithHealthClock(clock func() time.Time) HealthOption {
	return func(r *healthRepository) {
		if clock != nil {
			r.now = clock
		}
	}
}

type healthRepository struct {
	checks []HealthCheck
	now    func() time.Time
}

// NewHealthRepository evaluates the provided probe set concurrently.
func NewHealthRepository(checks []HealthCheck, opts ...HealthOption) (HealthRepository, error) {
	if len(checks) == 0 {
		return nil, errors.New("health repository: at least one check is required")
	}
	for _, check := range checks {
		if strings.TrimSpace(check.Name) == "" || check.Check == nil {
			return nil, errors.New("health repository: checks need a name and a function")
		}
	}
	repo := &healthRepository{
		checks: append([]HealthCheck(nil), checks...),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(repo)
		}
	}
	return repo, nil
}

func (r *healthRepository) Collect(ctx context.Context) (HealthReport, error) {
	if ctx == nil {
		return HealthReport{}, errors.New("health repository: context is required")
	}

	results := make(map[string]HealthCheckResult, len(r.checks))
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	wg.Add(len(r.checks))
	for _, check := range r.checks {
		check := check
		go func() {
			defer wg.Done()

			timeout := check.Timeout
			if timeout <= 0 {
				timeout = defaultProbeTimeout
			}
			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			start := r.now()
			err := check.Check(checkCtx)
			end := r.now()

			result := HealthCheckResult{
				Status:    HealthStatusOK,
				Latency:   end.Sub(start),
				CheckedAt: end,
			}
			switch {
			case err == nil:
			case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
				result.Status = HealthStatusError
				result.Detail = err.Error()
			default:
				result.Status = HealthStatusDegraded
				result.Detail = err.Error()
			}

			mu.Lock()
			results[check.Name] = result
			mu.Unlock()
		}()
	}
	wg.Wait()

	status := HealthStatusOK
	for _, result := range results {
		if result.Status == HealthStatusError {
			status = HealthStatusError
			break
		}
		if result.Status == HealthStatusDegraded {
			status = HealthStatusDegraded
		}
	}

	return HealthReport{
		Status:      status,
		Checks:      results,
		GeneratedAt: r.now(),
	}, nil
}
