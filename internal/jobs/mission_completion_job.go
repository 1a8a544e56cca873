package jobs

import (
	"context"
	"log/slog"

	"missions/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MissionCompletionJob periodically sweeps approved missions whose contract
// period has elapsed into pending validation. Runs once a minute; a mission
// the crew completes by hand in between is simply not picked up, the sweep
// only sees missions still in the approved status.
type MissionCompletionJob struct {
	handler commands.SweepCompletedMissionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMissionCompletionJob creates the completion sweep job.
func NewMissionCompletionJob(
	handler commands.SweepCompletedMissionsCommandHandler, logger *slog.Logger,
) *MissionCompletionJob {
	return &MissionCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "mission_completion_job"),
	}
}

// Start begins the completion sweep, running at the top of every minute.
func (j *MissionCompletionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepCompletedMissionsCommand()

		advanced, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Mission completion sweep failed", "error", err)
			return
		}
		if advanced > 0 {
			j.logger.InfoContext(ctx, "Mission completion sweep advanced missions", "count", advanced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Mission completion job started (running every minute)")
	return nil
}

// Stop stops the completion sweep job.
func (j *MissionCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Mission completion job stopped")
}
