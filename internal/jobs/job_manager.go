package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrderMonitorJob *PendingOrderMonitorJob
	deliveryReportJob      *DeliveryReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	allOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrderMonitorJob: NewPendingOrderMonitorJob(availableOrdersHandler, logger),
		deliveryReportJob:      NewDeliveryReportJob(allOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order monitor job: %w", err)
	}

	if err := jm.deliveryReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingOrderMonitorJob.Stop()
		return fmt.Errorf("failed to start delivery report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrderMonitorJob.Stop()
	jm.deliveryReportJob.Stop()
}
