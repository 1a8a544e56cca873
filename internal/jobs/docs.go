// Package jobs provides scheduled background tasks for the mission order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the staffing service.
//
// # Available Jobs
//
// 1. MissionCompletionJob - Runs every minute to advance approved missions whose
// contract period has elapsed into pending validation
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The completion job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Contract periods have day granularity, so a minute of
// latency between the period elapsing and the sweep is immaterial.
//
// # Error Handling
//
// - A failed sweep run is logged and retried on the next tick
// - Missions whose status changed between the query and the transition are
// skipped, not failed
package jobs
