// Package jobs provides scheduled background tasks. Jobs wrap command
// handlers in github.com/robfig/cron/v3 schedules and are coordinated
// through JobManager from the composition root.
package jobs

import (
	"fmt"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	creditOverdueJob *CreditOverdueJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	sweepOverdueHandler commands.SweepOverdueCreditsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		creditOverdueJob: NewCreditOverdueJob(sweepOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.creditOverdueJob.Start(); err != nil {
		return fmt.Errorf("failed to start credit overdue job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.creditOverdueJob.Stop()
}
