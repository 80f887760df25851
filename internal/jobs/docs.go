// Package jobs provides scheduled background tasks for the restaurant service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// LowStockAlertJob - checks the ingredient counters and sends one LowStock notification
// listing every ingredient at or below its minimum level.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(notifyLowStockHandler, config.LowStockSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six field cron format with seconds. The low stock check defaults to
// "0 */5 * * * *", every five minutes.
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. An invalid schedule makes StartAll fail.
package jobs
