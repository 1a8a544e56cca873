package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// CompleteExecutionCommandHandler records the end of a mission's execution,
// including extensions past the contracted end date.
type CompleteExecutionCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewCompleteExecutionCommandHandler creates a handler for execution completion operations.
func NewCompleteExecutionCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) CompleteExecutionCommandHandler {
	return CompleteExecutionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the execution completion command.
func (h CompleteExecutionCommandHandler) Handle(
	ctx context.Context, cmd CompleteExecutionCommand,
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

	err = missionOrder.CompleteExecution(
		cmd.Actor(), cmd.ActualEndDate(), cmd.ExtensionReason(), time.Now().UTC())
	if err != nil {
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
