package jobs

import (
	"fmt"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sealBackfillJob *SealBackfillJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sealUnsealedOrdersHandler commands.SealUnsealedOrdersCommandHandler,
	backfillSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sealBackfillJob: NewSealBackfillJob(sealUnsealedOrdersHandler, backfillSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sealBackfillJob.Start(); err != nil {
		return fmt.Errorf("failed to start seal backfill job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sealBackfillJob.Stop()
}
