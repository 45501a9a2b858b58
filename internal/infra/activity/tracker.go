// Package activity writes audit events without holding up the request that
// produced them.
package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/infra/metrics"

	"go.uber.org/fx"
)

const writeTimeout = 5 * time.Second

// TrackerParams holds the dependencies for NewTracker.
type TrackerParams struct {
	fx.In
	fx.Lifecycle

	Repo    repository.ActivityRepository
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Tracker persists events on background goroutines and drains them on stop.
type Tracker struct {
	repo    repository.ActivityRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	wg      sync.WaitGroup
}

// NewTracker returns the tracker as a service.ActivityTracker and waits for
// in-flight writes when the app stops.
func NewTracker(params TrackerParams) service.ActivityTracker {
	tracker := newTracker(params.Repo, params.Logger, params.Metrics)

	params.Append(fx.Hook{
		OnStop: tracker.Drain,
	})

	return tracker
}

func newTracker(repo repository.ActivityRepository, logger *slog.Logger, m *metrics.Metrics) *Tracker {
	return &Tracker{
		repo:    repo,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// Track records event asynchronously. The request context's values (request
// ID, logger) are kept but its cancellation is not.
func (t *Tracker) Track(ctx context.Context, event entity.ActivityEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = t.now()
	}
	if t.metrics != nil {
		t.metrics.RecordAuthEvent(event.Action)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, t.logger)
	bgCtx := context.WithoutCancel(ctx)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		writeCtx, cancel := context.WithTimeout(bgCtx, writeTimeout)
		defer cancel()

		if err := t.repo.Create(writeCtx, &event); err != nil {
			logger.WarnContext(writeCtx, "Failed to record activity",
				slog.String("action", event.Action),
				slog.Any("error", err),
			)
		}
	}()
}

// Drain blocks until pending writes finish or ctx ends.
func (t *Tracker) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
