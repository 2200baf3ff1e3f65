package jobs

import (
	"context"
	"time"

	"dentallab/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// runTimeout bounds one scheduled scan, including the hand-off of its events.
const runTimeout = time.Minute

// overdueHandler is the part of FlagOverdueOrdersCommandHandler the job depends on.
type overdueHandler interface {
	Handle(ctx context.Context, cmd commands.FlagOverdueOrdersCommand) (int, error)
}

// OverdueOrdersJob scans for open orders past their expected delivery date on a cron schedule
// and announces each one with an order.overdue event.
type OverdueOrdersJob struct {
	handler  overdueHandler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	clock    func() time.Time
	logger   *zap.Logger
}

// NewOverdueOrdersJob creates the job. schedule is a standard five-field cron expression,
// e.g. "0 6 * * *" for every day at 06:00 UTC.
func NewOverdueOrdersJob(handler overdueHandler, schedule string, logger *zap.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler:  handler,
		schedule: schedule,
		timeout:  runTimeout,
		cron:     cron.New(cron.WithLocation(time.UTC)),
		clock:    time.Now,
		logger:   logger.With(zap.String("component", "overdue_orders_job")),
	}
}

// Start registers the scan and starts the scheduler.
func (j *OverdueOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.scheduledRun); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Overdue orders job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *OverdueOrdersJob) scheduledRun() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	j.Run(ctx)
}

// Run performs one scan. Errors are logged, never returned, so a failed run does not stop
// the schedule.
func (j *OverdueOrdersJob) Run(ctx context.Context) {
	cmd, err := commands.NewFlagOverdueOrdersCommand(j.clock())
	if err != nil {
		j.logger.Error("Overdue orders job failed", zap.Error(err))
		return
	}

	flagged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Overdue orders job failed", zap.Error(err))
		return
	}
	j.logger.Info("Overdue orders flagged", zap.Int("count", flagged))
}

// Stop stops the scheduler and waits for a running scan to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Overdue orders job stopped")
}
