// Package jobs provides scheduled background tasks for the ordering engine.
//
// Jobs are cron-driven using github.com/robfig/cron/v3 and delegate their work to command
// handlers, so a job holds no business rules of its own.
//
// # Available Jobs
//
//  1. OverdueOrdersJob - scans for open orders past their expected delivery date and
//     publishes an order.overdue event for each one. The schedule comes from
//     OVERDUE_SCAN_SCHEDULE (default "0 6 * * *").
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&flagOverdueHandler, cfg.Jobs.OverdueSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the schedule keeps going.
package jobs
