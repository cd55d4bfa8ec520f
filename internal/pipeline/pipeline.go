package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
	"github.com/couchcryptid/astronaut-etl/internal/observability"
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// AstronautSource returns the astronauts currently in space.
type AstronautSource interface {
	FetchAstronauts(ctx context.Context) ([]domain.AstronautRecord, error)
}

// WeatherSource returns the current weather observation.
type WeatherSource interface {
	FetchWeather(ctx context.Context) (domain.WeatherObservation, error)
}

// Transformer converts one acquisition snapshot into a run report.
type Transformer interface {
	Transform(ctx context.Context, seed uint64, astronauts []domain.AstronautRecord, weather domain.WeatherObservation) (domain.RunReport, error)
}

// ReportLoader writes a run report to a destination.
type ReportLoader interface {
	Load(ctx context.Context, report domain.RunReport) error
}

// Stage identifies the step of a run that failed.
type Stage string

const (
	StageAcquire   Stage = "acquire"
	StageTransform Stage = "transform"
	StageLoad      Stage = "load"
)

// RunError records which stage of a run failed.
type RunError struct {
	Stage Stage
	Err   error
}

func (e *RunError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }

func (e *RunError) Unwrap() error { return e.Err }

// Pipeline orchestrates the acquire-transform-load cycle on an interval.
type Pipeline struct {
	astronauts  AstronautSource
	weather     WeatherSource
	transformer Transformer
	loaders     []ReportLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	interval    time.Duration
	seed        uint64
	ready       atomic.Bool
	latest      atomic.Pointer[domain.RunReport]
}

// New creates a Pipeline. A zero seed derives a fresh seed from the clock
// for every run.
func New(astronauts AstronautSource, weather WeatherSource, t Transformer, loaders []ReportLoader,
	logger *slog.Logger, metrics *observability.Metrics, interval time.Duration, seed uint64,
) *Pipeline {
	return &Pipeline{
		astronauts:  astronauts,
		weather:     weather,
		transformer: t,
		loaders:     loaders,
		logger:      logger,
		metrics:     metrics,
		interval:    interval,
		seed:        seed,
	}
}

// CheckReadiness returns nil once a run has completed successfully.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not completed a run yet")
	}
	return nil
}

// Latest returns the most recent successful report.
func (p *Pipeline) Latest() (domain.RunReport, bool) {
	r := p.latest.Load()
	if r == nil {
		return domain.RunReport{}, false
	}
	return *r, true
}

// Run executes runs on the configured interval until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "interval", p.interval)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	backoff := initialBackoff

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		_, err := p.RunOnce(ctx)
		if ctx.Err() != nil {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}

		// A transform failure is a data problem; the same input would fail
		// again, so it waits for the next interval instead of backing off.
		var runErr *RunError
		if err != nil && errors.As(err, &runErr) && runErr.Stage != StageTransform {
			if !sleepWithContext(ctx, backoff) {
				return nil
			}
			backoff = nextBackoff(backoff, maxBackoff)
			continue
		}
		backoff = initialBackoff

		if !sleepWithContext(ctx, p.interval) {
			return nil
		}
	}
}

// RunOnce performs a single acquire-transform-load cycle and returns the
// report. Failures are wrapped in *RunError.
func (p *Pipeline) RunOnce(ctx context.Context) (domain.RunReport, error) {
	start := time.Now()

	astronauts, err := p.astronauts.FetchAstronauts(ctx)
	if err != nil {
		return domain.RunReport{}, p.fail(StageAcquire, fmt.Errorf("fetch astronauts: %w", err))
	}
	weather, err := p.weather.FetchWeather(ctx)
	if err != nil {
		return domain.RunReport{}, p.fail(StageAcquire, fmt.Errorf("fetch weather: %w", err))
	}

	report, err := p.transformer.Transform(ctx, p.runSeed(), astronauts, weather)
	if err != nil {
		return domain.RunReport{}, p.fail(StageTransform, err)
	}

	for _, l := range p.loaders {
		if err := l.Load(ctx, report); err != nil {
			return domain.RunReport{}, p.fail(StageLoad, err)
		}
	}

	p.latest.Store(&report)
	p.ready.Store(true)
	p.metrics.RunsTotal.Inc()
	p.metrics.AstronautsInSpace.Set(float64(len(report.Profiles)))
	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("run completed",
		"run_id", report.RunID,
		"astronauts", len(report.Profiles),
		"spacecraft", report.Correlation.NumSpacecraft,
		"duration", time.Since(start),
	)
	return report, nil
}

func (p *Pipeline) fail(stage Stage, err error) error {
	if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		p.metrics.RunErrors.WithLabelValues(string(stage)).Inc()
		p.logger.Error("run failed", "stage", stage, "error", err)
	}
	return &RunError{Stage: stage, Err: err}
}

func (p *Pipeline) runSeed() uint64 {
	if p.seed != 0 {
		return p.seed
	}
	return uint64(domain.Now().UnixNano())
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
