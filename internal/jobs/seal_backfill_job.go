package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// sealBackfillBatchSize caps how many orders one backfill run seals.
const sealBackfillBatchSize = 200

// SealBackfillJob periodically seals orders that predate integrity sealing
// and never received a seal. Once the backlog is drained the job keeps
// running and simply finds nothing to do.
type SealBackfillJob struct {
	handler  commands.SealUnsealedOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewSealBackfillJob creates a backfill job driven by the given cron schedule.
func NewSealBackfillJob(
	handler commands.SealUnsealedOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SealBackfillJob {
	return &SealBackfillJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "seal_backfill_job"),
	}
}

// Start begins the seal backfill job on its configured schedule.
func (j *SealBackfillJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSealUnsealedOrdersCommand(sealBackfillBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Seal backfill job misconfigured", "error", cmdErr)
			return
		}

		sealed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Seal backfill job failed", "error", handleErr)
			return
		}

		if sealed > 0 {
			j.logger.InfoContext(ctx, "Seal backfill run completed", "sealed", sealed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Seal backfill job started", "schedule", j.schedule)
	return nil
}

// Stop stops the seal backfill job.
func (j *SealBackfillJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Seal backfill job stopped")
}
