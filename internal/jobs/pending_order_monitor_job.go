package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleOrderAge is how long an order may sit unclaimed before the monitor
// flags it.
const staleOrderAge = 30 * time.Minute

// PendingOrderMonitorJob watches the order board and warns about orders that
// no carrier has claimed for a while. Runs every minute.
type PendingOrderMonitorJob struct {
	handler queries.GetAvailableOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrderMonitorJob creates a new job for monitoring the order board.
func NewPendingOrderMonitorJob(handler queries.GetAvailableOrdersQueryHandler, logger *slog.Logger) *PendingOrderMonitorJob {
	return &PendingOrderMonitorJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_order_monitor_job"),
	}
}

// Start begins the monitor job to run every minute.
func (j *PendingOrderMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		board, err := j.handler.Handle(ctx, queries.NewGetAvailableOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order monitor failed", "error", err)
			return
		}

		cutoff := time.Now().Add(-staleOrderAge)
		stale := 0
		for _, pending := range board {
			if pending.CreatedAt.Before(cutoff) {
				stale++
			}
		}

		if stale > 0 {
			j.logger.WarnContext(ctx, "Orders are sitting unclaimed",
				"stale", stale, "total_pending", len(board), "older_than", staleOrderAge.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order monitor started (running every minute)")
	return nil
}

// Stop stops the monitor job.
func (j *PendingOrderMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order monitor stopped")
}
