// Package scheduler drives the update pipeline on a cron schedule, gated by a
// one-time startup health check.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// HealthCheck runs once at startup. A non-nil error keeps the scheduler in
// its unstarted state permanently.
type HealthCheck func(ctx context.Context) error

// Pipeline is one full fetch -> resolve -> encode -> dispatch tick.
type Pipeline func(ctx context.Context)

// Scheduler is a two-state machine: unstarted until the health check passes,
// then running until stopped. A single-slot semaphore guarantees ticks never
// overlap; a firing that arrives while the previous tick is still in flight
// is skipped.
type Scheduler struct {
	spec     string
	health   HealthCheck
	run      Pipeline
	cron     *cron.Cron
	inFlight *semaphore.Weighted
	running  bool
	log      zerolog.Logger
}

// New creates a Scheduler for the given cron expression.
func New(spec string, health HealthCheck, run Pipeline, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		spec:     spec,
		health:   health,
		run:      run,
		cron:     cron.New(),
		inFlight: semaphore.NewWeighted(1),
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// Start runs the health check and, on success, registers the recurring tick
// and starts the cron loop. On failure the error is returned and periodic
// work is never registered.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.health(ctx); err != nil {
		s.log.Error().Err(err).Msg("health check failed, scheduled updates will not start")

		return err
	}

	s.log.Info().Str("schedule", s.spec).Msg("health check passed, starting scheduled updates")

	if _, err := s.cron.AddFunc(s.spec, func() { s.fire(ctx) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.running = true

	return nil
}

// Running reports whether periodic execution has begun.
func (s *Scheduler) Running() bool {
	return s.running
}

// Stop halts future firings. A tick already in flight is left to finish.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}

	s.cron.Stop()
	s.running = false
	s.log.Info().Msg("scheduler stopped")
}

// fire runs one tick unless the previous one is still in flight.
func (s *Scheduler) fire(ctx context.Context) {
	if !s.inFlight.TryAcquire(1) {
		s.log.Warn().Msg("previous tick still in flight, skipping this firing")

		return
	}
	defer s.inFlight.Release(1)

	s.log.Info().Msg("running price update tick")
	s.run(ctx)
	s.log.Info().Msg("price update tick completed")
}
