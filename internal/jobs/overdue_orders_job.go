package jobs

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically sweeps for purchase orders whose expected
// delivery date has passed while they still await goods. Findings are logged
// so operators can chase suppliers; the orders themselves are not modified.
type OverdueOrdersJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrdersJob creates a new job for detecting overdue purchase orders.
// Uses GetOverdueOrdersQueryHandler to scan all organizations once an hour.
func NewOverdueOrdersJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue orders sweep, running at the top of every hour.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running hourly)")
	return nil
}

// Stop stops the overdue orders sweep.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}

func (j *OverdueOrdersJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueOrdersQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders sweep failed", "error", err)
		return
	}

	for _, o := range overdue {
		j.logger.WarnContext(ctx, "Purchase order is overdue",
			"order_id", o.ID.String(),
			"organization_id", o.OrganizationID.String(),
			"order_number", o.OrderNumber,
			"supplier", o.SupplierName,
			"status", o.Status,
			"expected_delivery_date", o.ExpectedDeliveryDate.Format(time.RFC3339),
		)
	}

	if len(overdue) > 0 {
		j.logger.InfoContext(ctx, "Overdue orders sweep completed", "overdue_count", len(overdue))
	}
}
