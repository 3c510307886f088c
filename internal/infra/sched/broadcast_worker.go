// Package sched runs the recurring background jobs. The only job today is
// the daily birthday broadcast.
package sched

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"birthday-botique/internal/infra/metrics"
	"birthday-botique/internal/usecase"
)

// retryDelay is the fixed backoff before the single retry of a failed run.
const retryDelay = 10 * time.Second

// BroadcastWorker fires the birthday broadcast once a day at the configured
// wall-clock time. A failing or panicking run is logged and retried once; the
// worker itself never stops before ctx is cancelled.
type BroadcastWorker struct {
	uc    usecase.BroadcastUseCase
	cron  *cron.Cron
	loc   *time.Location
	spec  string
	retry time.Duration
	log   *zerolog.Logger
}

// NewBroadcastWorker schedules a daily run at "HH:MM" in the given IANA
// timezone.
func NewBroadcastWorker(uc usecase.BroadcastUseCase, at, timezone string, logger *zerolog.Logger) (*BroadcastWorker, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	spec, err := buildDailySpec(at)
	if err != nil {
		return nil, err
	}
	return &BroadcastWorker{
		uc:    uc,
		cron:  cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		loc:   loc,
		spec:  spec,
		retry: retryDelay,
		log:   logger,
	}, nil
}

// Start registers the job and runs the cron loop until ctx is cancelled.
func (w *BroadcastWorker) Start(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.spec, func() { w.runOnce(ctx) })
	if err != nil {
		return fmt.Errorf("schedule broadcast at %q: %w", w.spec, err)
	}
	w.log.Info().Str("spec", w.spec).Str("timezone", w.loc.String()).Msg("broadcast worker started")
	w.cron.Start()

	<-ctx.Done()
	stopped := w.cron.Stop()
	<-stopped.Done()
	return ctx.Err()
}

// runOnce executes one broadcast attempt plus at most one retry.
func (w *BroadcastWorker) runOnce(ctx context.Context) {
	if err := w.attempt(ctx); err == nil {
		return
	}
	select {
	case <-ctx.Done():
		return
	case <-time.After(w.retry):
	}
	if err := w.attempt(ctx); err != nil {
		w.log.Error().Err(err).Msg("broadcast retry failed, giving up until tomorrow")
	}
}

func (w *BroadcastWorker) attempt(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("broadcast panicked: %v", rec)
		}
		if err != nil {
			metrics.IncBroadcastRun("failed")
			w.log.Error().Err(err).Msg("broadcast run failed")
			return
		}
		metrics.IncBroadcastRun("ok")
	}()

	today := time.Now().In(w.loc)
	sent, err := w.uc.SendBirthdayWishes(ctx, today)
	if err != nil {
		return err
	}
	w.log.Info().Int("sent", sent).Msg("broadcast run finished")
	return nil
}

// buildDailySpec turns "HH:MM" into a six-field cron spec firing once a day.
func buildDailySpec(at string) (string, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return "", fmt.Errorf("broadcast time %q is not HH:MM: %w", at, err)
	}
	return fmt.Sprintf("0 %d %d * * *", t.Minute(), t.Hour()), nil
}
