package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLowStockSchedule runs the check every five minutes (cron with seconds).
const DefaultLowStockSchedule = "0 */5 * * * *"

type lowStockNotifier interface {
	Handle(ctx context.Context, cmd commands.NotifyLowStockCommand) (int, error)
}

// LowStockAlertJob periodically tells staff which ingredients reached their minimum level.
// Stock adjustments never drive a counter below zero, so refused deductions surface here
// as low stock instead of as negative counters.
type LowStockAlertJob struct {
	handler  lowStockNotifier
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLowStockAlertJob creates the job. An empty schedule falls back to DefaultLowStockSchedule.
func NewLowStockAlertJob(handler lowStockNotifier, schedule string, logger *slog.Logger) *LowStockAlertJob {
	if schedule == "" {
		schedule = DefaultLowStockSchedule
	}
	return &LowStockAlertJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_alert_job"),
	}
}

// Run performs a single check.
func (j *LowStockAlertJob) Run(ctx context.Context) {
	count, err := j.handler.Handle(ctx, commands.NewNotifyLowStockCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock alert job failed", "error", err)
		return
	}
	if count > 0 {
		j.logger.InfoContext(ctx, "Low stock reported", "ingredients", count)
	}
}

// Start schedules the job.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job. A check that is already running is allowed to finish.
func (j *LowStockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
