package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoResolveJob *AutoResolveJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query and command handlers as dependencies to wire up job execution.
func NewJobManager(
	parkedOrders queries.GetProblemOrdersQueryHandler,
	resolveHandler commands.AttemptAutoResolveCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoResolveJob: NewAutoResolveJob(parkedOrders, resolveHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoResolveJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto-resolve job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoResolveJob.Stop()
}
