package jobs

import (
	"context"
	"errors"
	"log/slog"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// autoResolveSchedule runs every thirty seconds, giving couriers a
// window to place bids before an auction is closed automatically.
const autoResolveSchedule = "*/30 * * * * *"

// AutoResolveJob periodically closes open auctions by selecting the
// lowest bid on each. Orders without bids stay open until a bid arrives
// or an operator steps in.
type AutoResolveJob struct {
	handler commands.AutoResolveBiddingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoResolveJob creates a new job for the auction resolution sweep.
// Uses AutoResolveBiddingCommandHandler to assign the winning courier on
// every order open for bidding.
func NewAutoResolveJob(handler commands.AutoResolveBiddingCommandHandler, logger *slog.Logger) *AutoResolveJob {
	return &AutoResolveJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "auto_resolve_job"),
	}
}

// Start begins the auction resolution sweep on its schedule.
func (j *AutoResolveJob) Start() error {
	_, err := j.cron.AddFunc(autoResolveSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewAutoResolveBiddingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A version conflict means a manual resolution raced the sweep;
			// the next run picks up whatever is left.
			if !errors.Is(err, errs.ErrVersionIsInvalid) {
				j.logger.ErrorContext(ctx, "Auto resolve job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto resolve job started (running every 30 seconds)")
	return nil
}

// Stop stops the auction resolution sweep.
func (j *AutoResolveJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto resolve job stopped")
}
