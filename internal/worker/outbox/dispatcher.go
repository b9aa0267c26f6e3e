// Package outbox drains notification_jobs written by the lending core and
// hands them to a Publisher. Delivery is at-least-once.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"lending-ledger/internal/pkg/clock"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxRetryDelay = 5 * time.Minute

//go:generate mockgen -source=dispatcher.go -destination=../../../tests/mock/worker/publisher_mock.go -package=workermock
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

type Dispatcher struct {
	uow    shared.UnitOfWork
	pub    Publisher
	clock  clock.Clock
	cfg    config.OutboxConfig
	logger *slog.Logger
}

func NewDispatcher(uow shared.UnitOfWork, pub Publisher, clk clock.Clock, cfg config.OutboxConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{uow: uow, pub: pub, clock: clk, cfg: cfg, logger: logger}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	d.logger.Info("outbox dispatcher started",
		"poll_interval", d.cfg.PollInterval.String(),
		"batch_size", d.cfg.BatchSize)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("outbox dispatcher stopped")
			return nil
		case <-ticker.C:
			if _, err := d.DispatchOnce(ctx); err != nil && ctx.Err() == nil {
				d.logger.Error("outbox dispatch failed", "error", err.Error())
			}
		}
	}
}

type outcome struct {
	job shared.NotificationJob
	err error
}

// DispatchOnce claims one batch of due jobs and publishes them. It returns
// the number of jobs marked sent.
//
// Claiming leases the batch by pushing run_at past the lease timeout, so
// publishing happens outside any unit of work and results are recorded in a
// second one. A batch whose results never get recorded is retried once the
// lease expires.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	jobs, err := d.claim(ctx)
	if err != nil || len(jobs) == 0 {
		return 0, err
	}

	outcomes := make([]outcome, 0, len(jobs))
	for _, job := range jobs {
		outcomes = append(outcomes, outcome{job: job, err: d.pub.Publish(ctx, job.Topic, job.Payload)})
	}

	return d.record(ctx, outcomes)
}

func (d *Dispatcher) claim(ctx context.Context) ([]shared.NotificationJob, error) {
	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := d.clock.Now()
		claimed, err := tx.Outbox().ClaimDue(ctx, now, d.cfg.BatchSize)
		if err != nil {
			return err
		}
		ids := make([]uuid.UUID, 0, len(claimed))
		for _, job := range claimed {
			ids = append(ids, job.ID)
		}
		if err := tx.Outbox().Lease(ctx, ids, now.Add(d.cfg.LeaseTimeout), now); err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (d *Dispatcher) record(ctx context.Context, outcomes []outcome) (int, error) {
	sent := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := d.clock.Now()
		for _, o := range outcomes {
			if o.err == nil {
				if err := tx.Outbox().MarkSent(ctx, o.job.ID, now); err != nil {
					return err
				}
				sent++
				continue
			}

			attempts := o.job.Attempts + 1
			terminal := attempts >= d.cfg.MaxAttempts
			retryAt := now.Add(d.retryDelay(attempts))
			d.logger.Warn("outbox publish failed",
				"job_id", o.job.ID,
				"kind", o.job.Kind,
				"attempts", attempts,
				"terminal", terminal,
				"error", o.err.Error())
			if err := tx.Outbox().MarkFailed(ctx, o.job.ID, attempts, o.err.Error(), terminal, retryAt, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func (d *Dispatcher) retryDelay(attempts int) time.Duration {
	delay := d.cfg.PollInterval << min(attempts, 16)
	if delay <= 0 || delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}
