package jobs

import (
	"context"
	"errors"
	"log/slog"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// biddingOpenSchedule runs the sweep every five seconds so confirmed
// orders reach couriers quickly without hammering the database.
const biddingOpenSchedule = "*/5 * * * * *"

// BiddingOpenJob periodically opens bidding on every confirmed order.
// Runs the sweep on a fixed schedule so orders do not wait for an
// operator to start their auction.
type BiddingOpenJob struct {
	handler commands.OpenPendingBiddingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBiddingOpenJob creates a new job for the bidding sweep.
// Uses OpenPendingBiddingCommandHandler to move confirmed orders into
// the bidding stage.
func NewBiddingOpenJob(handler commands.OpenPendingBiddingCommandHandler, logger *slog.Logger) *BiddingOpenJob {
	return &BiddingOpenJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "bidding_open_job"),
	}
}

// Start begins the bidding sweep on its schedule.
func (j *BiddingOpenJob) Start() error {
	_, err := j.cron.AddFunc(biddingOpenSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewOpenPendingBiddingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A version conflict means an operator raced the sweep on the
			// same order; the next run picks up whatever is left.
			if !errors.Is(err, errs.ErrVersionIsInvalid) {
				j.logger.ErrorContext(ctx, "Bidding open job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Bidding open job started (running every 5 seconds)")
	return nil
}

// Stop stops the bidding sweep.
func (j *BiddingOpenJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Bidding open job stopped")
}
