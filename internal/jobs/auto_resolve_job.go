package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// AutoResolveJob manages the scheduled recovery sweep over escalated orders.
// Every sweep lists the orders parked in Problem or Waiting and attempts a
// silent recovery for each one.
type AutoResolveJob struct {
	parkedOrders   queries.GetProblemOrdersQueryHandler
	resolveHandler commands.AttemptAutoResolveCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewAutoResolveJob creates a new job for sweeping escalated orders.
// Uses GetProblemOrdersQueryHandler to find candidates and
// AttemptAutoResolveCommandHandler to recover them.
func NewAutoResolveJob(
	parkedOrders queries.GetProblemOrdersQueryHandler,
	resolveHandler commands.AttemptAutoResolveCommandHandler,
	logger *slog.Logger,
) *AutoResolveJob {
	return &AutoResolveJob{
		parkedOrders:   parkedOrders,
		resolveHandler: resolveHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "auto_resolve_job"),
	}
}

// Start begins the recovery sweep to run every ten seconds.
func (j *AutoResolveJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-resolve job started (sweeping every ten seconds)")
	return nil
}

// Stop stops the recovery sweep.
func (j *AutoResolveJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-resolve job stopped")
}

// sweep runs one pass over every parked order. One order's failure never
// blocks the rest of the sweep.
func (j *AutoResolveJob) sweep() {
	ctx := context.Background()

	parked, err := j.parkedOrders.Handle(ctx, queries.NewGetProblemOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Auto-resolve sweep failed to list parked orders", "error", err)
		return
	}

	for _, row := range parked {
		cmd, cmdErr := commands.NewAttemptAutoResolveCommand(row.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Auto-resolve sweep skipped order",
				"order_id", row.ID.String(), "error", cmdErr)
			continue
		}

		result, handleErr := j.resolveHandler.Handle(ctx, cmd)
		if handleErr != nil {
			// An office decision racing the sweep is an expected scenario,
			// not a system issue.
			if !errors.Is(handleErr, errs.ErrInvalidTransition) &&
				!errors.Is(handleErr, errs.ErrPreconditionFailed) {
				j.logger.ErrorContext(ctx, "Auto-resolve attempt failed",
					"order_id", row.ID.String(), "error", handleErr)
			}
			continue
		}

		if result.Resolved {
			j.logger.InfoContext(ctx, "Order recovered",
				"order_id", row.ID.String(), "warehouse", result.Warehouse.String())
		}
	}
}
