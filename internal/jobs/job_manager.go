package jobs

import (
	"fmt"
	"log/slog"

	"cctexpress/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
// Either sweep can be switched off through configuration, in which case
// the corresponding job is never created.
type JobManager struct {
	biddingOpenJob *BiddingOpenJob
	autoResolveJob *AutoResolveJob
}

// NewJobManager creates a job manager with the enabled jobs wired to
// their command handlers. Disabled jobs are omitted entirely.
func NewJobManager(
	openPendingHandler commands.OpenPendingBiddingCommandHandler,
	autoResolveHandler commands.AutoResolveBiddingCommandHandler,
	biddingOpenEnabled bool,
	autoResolveEnabled bool,
	logger *slog.Logger,
) *JobManager {
	manager := &JobManager{}

	if biddingOpenEnabled {
		manager.biddingOpenJob = NewBiddingOpenJob(openPendingHandler, logger)
	}
	if autoResolveEnabled {
		manager.autoResolveJob = NewAutoResolveJob(autoResolveHandler, logger)
	}

	return manager
}

// StartAll starts all enabled jobs.
// Returns an error if any job fails to start; jobs already started are
// stopped again so a partial start never leaks a running scheduler.
func (jm *JobManager) StartAll() error {
	if jm.biddingOpenJob != nil {
		if err := jm.biddingOpenJob.Start(); err != nil {
			return fmt.Errorf("failed to start bidding open job: %w", err)
		}
	}

	if jm.autoResolveJob != nil {
		if err := jm.autoResolveJob.Start(); err != nil {
			if jm.biddingOpenJob != nil {
				jm.biddingOpenJob.Stop()
			}
			return fmt.Errorf("failed to start auto resolve job: %w", err)
		}
	}

	return nil
}

// StopAll stops all running jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.autoResolveJob != nil {
		jm.autoResolveJob.Stop()
	}
	if jm.biddingOpenJob != nil {
		jm.biddingOpenJob.Stop()
	}
}
