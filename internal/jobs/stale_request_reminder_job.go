// Package jobs provides scheduled background housekeeping built on
// github.com/robfig/cron/v3. Jobs never touch assignment state; the core
// operations stay request-driven.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"coordinator/internal/core/application/usecases/queries"
	"coordinator/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleRequestReminderJob nudges the admin staff about delivery requests
// that have been sitting in the review queue for too long. Runs hourly; the
// reminder goes through the notification out-port and is best-effort.
type StaleRequestReminderJob struct {
	pendingRequests queries.PendingDeliveryRequestsQueryHandler
	notifier        ports.NotificationService
	threshold       time.Duration
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewStaleRequestReminderJob creates the reminder job. Requests older than
// threshold count as stale.
func NewStaleRequestReminderJob(
	pendingRequests queries.PendingDeliveryRequestsQueryHandler,
	notifier ports.NotificationService,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleRequestReminderJob {
	return &StaleRequestReminderJob{
		pendingRequests: pendingRequests,
		notifier:        notifier,
		threshold:       threshold,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "stale_request_reminder_job"),
	}
}

// Start schedules the job to run at the top of every hour.
func (j *StaleRequestReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		if err := j.remind(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale request reminder failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale request reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *StaleRequestReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale request reminder job stopped")
}

func (j *StaleRequestReminderJob) remind(ctx context.Context) error {
	pending, err := j.pendingRequests.Handle(ctx, queries.NewPendingDeliveryRequestsQuery())
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-j.threshold)
	stale := 0
	for _, request := range pending {
		if request.RequestedAt.Before(cutoff) {
			stale++
		}
	}

	if stale == 0 {
		return nil
	}

	if err = j.notifier.NotifyPendingRequestsReminder(ctx, stale); err != nil {
		j.logger.WarnContext(ctx, "Failed to send pending requests reminder",
			"stale_count", stale, "error", err)
		return nil
	}

	j.logger.InfoContext(ctx, "Pending requests reminder sent", "stale_count", stale)
	return nil
}
