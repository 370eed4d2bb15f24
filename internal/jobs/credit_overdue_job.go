package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CreditOverdueJob manages the scheduled overdue sweep. Runs hourly to move
// active credits past their payment term into vencido.
type CreditOverdueJob struct {
	handler commands.SweepOverdueCreditsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCreditOverdueJob creates the hourly overdue sweep job.
func NewCreditOverdueJob(
	handler commands.SweepOverdueCreditsCommandHandler, logger *slog.Logger,
) *CreditOverdueJob {
	return &CreditOverdueJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "credit_overdue_job"),
	}
}

// Start begins the overdue sweep on an hourly schedule.
func (j *CreditOverdueJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()
		cmd := commands.NewSweepOverdueCreditsCommand()

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Credit overdue sweep failed", "error", err)
			return
		}
		if swept > 0 {
			j.logger.InfoContext(ctx, "Credits marked overdue", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Credit overdue job started (running hourly)")
	return nil
}

// Stop stops the overdue sweep job.
func (j *CreditOverdueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Credit overdue job stopped")
}
