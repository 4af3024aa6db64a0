package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DeliveryReportJob logs an hourly census of the order book by status. The
// report gives operators a cheap pulse on marketplace throughput without a
// metrics stack.
type DeliveryReportJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryReportJob creates a new job for reporting order book totals.
func NewDeliveryReportJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *DeliveryReportJob {
	return &DeliveryReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_report_job"),
	}
}

// Start begins the report job to run at the top of every hour.
func (j *DeliveryReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery report failed", "error", err)
			return
		}

		byStatus := make(map[string]int)
		for _, o := range orders {
			byStatus[o.Status.String()]++
		}

		j.logger.InfoContext(ctx, "Order book census",
			"total", len(orders),
			"pending", byStatus["pending"],
			"accepted", byStatus["accepted"],
			"in_transit", byStatus["in_transit"],
			"delivered", byStatus["delivered"],
			"cancelled", byStatus["cancelled"])
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery report job started (running hourly)")
	return nil
}

// Stop stops the report job.
func (j *DeliveryReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery report job stopped")
}
