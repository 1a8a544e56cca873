package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// StartExecutionCommandHandler moves an assigned mission to execution.
// Admins are notified that the mission started.
type StartExecutionCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewStartExecutionCommandHandler creates a handler for execution start operations.
func NewStartExecutionCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) StartExecutionCommandHandler {
	return StartExecutionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the execution start command.
func (h StartExecutionCommandHandler) Handle(
	ctx context.Context, cmd StartExecutionCommand,
) (*mission.MissionOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	missionRepo := uow.MissionRepository()
	missionOrder, err := missionRepo.Get(ctx, cmd.MissionID())
	if err != nil {
		return nil, err
	}

	if err = missionOrder.StartExecution(cmd.Actor(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = missionRepo.Update(ctx, missionOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.notifier.Dispatch(ctx, missionOrder.PullEvents())

	return missionOrder, nil
}
