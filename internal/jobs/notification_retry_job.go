package jobs

import (
	"context"
	"log/slog"

	"fastfeet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRetrySchedule runs the retry every 30 seconds.
const DefaultRetrySchedule = "*/30 * * * * *"

type RetryNotificationsHandler interface {
	Handle(ctx context.Context, cmd commands.RetryNotificationsCommand) (commands.RetryReport, error)
}

// NotificationRetryJob resends cancellation notices whose first send failed.
type NotificationRetryJob struct {
	handler   RetryNotificationsHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRetryJob creates the retry job. The schedule is a cron
// expression with a leading seconds field. A run still in progress when the
// next one is due makes that next run skip.
func NewNotificationRetryJob(
	handler RetryNotificationsHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *NotificationRetryJob {
	return &NotificationRetryJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "notification_retry_job"),
	}
}

// Start registers the run on the schedule and starts the scheduler.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started", "schedule", j.schedule)
	return nil
}

// Run performs one retry pass.
func (j *NotificationRetryJob) Run(ctx context.Context) {
	cmd, err := commands.NewRetryNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification retry job misconfigured", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification retry job failed", "error", err)
		return
	}

	if report.Attempted > 0 {
		j.logger.InfoContext(ctx, "Notifications retried",
			"attempted", report.Attempted,
			"sent", report.Sent,
			"failed", report.Failed)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *NotificationRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}
