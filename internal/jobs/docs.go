// Package jobs provides scheduled background tasks for the order service.
//
// Jobs use github.com/robfig/cron/v3 and are started and stopped together through
// JobManager:
//
//	jobManager := jobs.NewJobManager(digestJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// PendingDigestJob runs on a configurable schedule (hourly by default), lists the
// orders still awaiting a seller decision and sends a digest to the operations
// address. Failures are logged and retried on the next tick.
package jobs
