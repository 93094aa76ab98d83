package jobs

import (
	"context"
	"log/slog"

	"orderops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DiscountDefaultJob manages the scheduled propagation of factory default
// discounts. Runs every minute to pick up lines with an undecided discount.
type DiscountDefaultJob struct {
	handler commands.PropagateDefaultsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDiscountDefaultJob creates a new job for propagating factory defaults.
// Uses PropagateDefaultsCommandHandler to process one sweep per minute.
func NewDiscountDefaultJob(handler commands.PropagateDefaultsCommandHandler, logger *slog.Logger) *DiscountDefaultJob {
	return &DiscountDefaultJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "discount_default_job"),
	}
}

// Start begins the discount default job to run every minute.
func (j *DiscountDefaultJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPropagateDefaultsCommand()

		applied, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Discount default job failed", "error", err)
			return
		}

		if applied > 0 {
			j.logger.InfoContext(ctx, "Factory defaults applied", "lines", applied)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Discount default job started (running every minute)")
	return nil
}

// Stop stops the discount default job.
func (j *DiscountDefaultJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Discount default job stopped")
}
