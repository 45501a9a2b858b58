// Package housekeeping periodically purges expired one-time codes and
// password reset records. Reads check expiry themselves, so a missed run only
// delays cleanup.
package housekeeping

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"recruit/config"
	"recruit/internal/delivery"
	"recruit/internal/domain/lifecycle"
	"recruit/internal/domain/repository"
	"recruit/internal/errors"
	"recruit/internal/infra/metrics"

	"go.uber.org/fx"
)

// Record labels used for the purge counter.
const (
	RecordOTP           = "otp"
	RecordPasswordReset = "password_reset"
)

// Params holds dependencies for the housekeeping worker
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	OTPRepo   repository.OTPRepository
	ResetRepo repository.PasswordResetRepository
}

type purger struct {
	record string
	purge  func(ctx context.Context, now time.Time) (int64, error)
}

// Worker runs a purge pass on every tick until stopped.
type Worker struct {
	interval time.Duration
	purgers  []purger
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates the housekeeping worker as a delivery.
func New(params Params) delivery.Delivery {
	w := newWorker(params.Cfg.Housekeeping.Interval, params.OTPRepo, params.ResetRepo, params.Metrics, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w
}

func newWorker(
	interval time.Duration,
	otpRepo repository.OTPRepository,
	resetRepo repository.PasswordResetRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	return &Worker{
		interval: interval,
		purgers: []purger{
			{record: RecordOTP, purge: otpRepo.DeleteExpired},
			{record: RecordPasswordReset, purge: resetRepo.DeleteExpired},
		},
		metrics: m,
		logger:  logger,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Serve runs one pass immediately, then one per interval.
func (w *Worker) Serve(ctx context.Context) error {
	w.wg.Add(1)
	defer w.wg.Done()

	w.logger.Info("Starting housekeeping", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		_ = w.RunOnce(w.ctx)

		select {
		case <-w.ctx.Done():
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce purges every record type once. A failure in one does not skip the
// others; the joined error is logged and returned.
func (w *Worker) RunOnce(ctx context.Context) error {
	now := w.now()

	var errs []error
	for _, p := range w.purgers {
		n, err := p.purge(ctx, now)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "purge %s", p.record))

			continue
		}
		w.metrics.RecordPurged(p.record, n)
		if n > 0 {
			w.logger.Info("Purged expired records",
				slog.String("record", p.record),
				slog.Int64("count", n),
			)
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		w.logger.Error("Housekeeping pass failed", slog.Any("error", err))
	}

	return err
}

func (w *Worker) stop(ctx context.Context) error {
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done:
		w.logger.Info("Housekeeping stopped")

		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "housekeeping did not stop in time")
	}
}
