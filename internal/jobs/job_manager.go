package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"coordinator/internal/core/application/usecases/queries"
	"coordinator/internal/core/ports"
)

// JobManager coordinates the application's scheduled jobs behind a single
// start/stop interface.
type JobManager struct {
	staleRequestReminderJob *StaleRequestReminderJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	pendingRequests queries.PendingDeliveryRequestsQueryHandler,
	notifier ports.NotificationService,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleRequestReminderJob: NewStaleRequestReminderJob(pendingRequests, notifier, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleRequestReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale request reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleRequestReminderJob.Stop()
}
