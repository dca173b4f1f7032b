// Package jobs provides scheduled background tasks for the fastfeet service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationRetryJob - resends cancellation notices left Pending after
// a failed first send, oldest first, until they reach the attempt limit
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(retryHandler, jobs.RetryConfig{
//		Schedule:  jobs.DefaultRetrySchedule,
//		BatchSize: commands.DefaultRetryBatchSize,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules carry a seconds field, so "*/30 * * * * *" runs twice a minute.
// A run still going when the next is due makes that next run skip.
//
// # Error Handling
//
// - Transport failures of single notifications are counted in the run report
// - Any other failure ends the run and is logged; the next run starts over
package jobs
