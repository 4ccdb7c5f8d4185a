// Package jobs provides scheduled background tasks for the order management
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the automated order lifecycle.
//
// # Available Jobs
//
// 1. OrderAdvancementJob - Runs every two minutes to move a page of orders one
// step along the status progression, with a small chance of an exception
// outcome per order.
// 2. OrderSeedingJob - Runs every five minutes to create a couple of mock
// orders so the lifecycle always has fresh traffic.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceOrdersHandler, seedOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use six-field cron expressions with a seconds column. Ticks never
// overlap within an instance: a tick still running when the next one fires is
// skipped via cron.SkipIfStillRunning. Stopping a job prevents future ticks
// while letting an in-flight tick complete.
//
// # Error Handling
//
// Both jobs log tick failures and keep their schedule; a failed tick never
// stops the job. Failed job starts stop any already running jobs.
package jobs
