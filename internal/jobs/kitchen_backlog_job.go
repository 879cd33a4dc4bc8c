package jobs

import (
	"context"
	"log/slog"

	"pos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// KitchenBacklogJob periodically reports the state of the kitchen queue.
// Runs every 30 seconds and logs how many sent orders are queued and how
// many of them carry updates the kitchen has not acknowledged yet.
type KitchenBacklogJob struct {
	handler queries.GetKitchenOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewKitchenBacklogJob creates a new job for reporting the kitchen backlog.
// The job is read-only: it goes through the kitchen orders query and never
// touches the aggregates.
func NewKitchenBacklogJob(handler queries.GetKitchenOrdersQueryHandler, logger *slog.Logger) *KitchenBacklogJob {
	return &KitchenBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "kitchen_backlog_job"),
	}
}

// Start begins the kitchen backlog job to run every 30 seconds.
func (j *KitchenBacklogJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetKitchenOrdersQuery()

		kitchenOrders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen backlog job failed", "error", err)
			return
		}

		withUnseen := 0
		for _, kitchenOrder := range kitchenOrders {
			if kitchenOrder.HasUnseenUpdates {
				withUnseen++
			}
		}

		j.logger.InfoContext(ctx, "Kitchen backlog",
			"queued_orders", len(kitchenOrders),
			"with_unseen_updates", withUnseen,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen backlog job started (running every 30 seconds)")
	return nil
}

// Stop stops the kitchen backlog job.
func (j *KitchenBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen backlog job stopped")
}
