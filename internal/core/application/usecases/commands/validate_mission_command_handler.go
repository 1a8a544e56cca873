package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// ValidateMissionCommandHandler records the crew member's post-mission
// sign-off and routes date-change requests raised during validation.
type ValidateMissionCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewValidateMissionCommandHandler creates a handler for mission validation operations.
func NewValidateMissionCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) ValidateMissionCommandHandler {
	return ValidateMissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the mission validation command.
func (h ValidateMissionCommandHandler) Handle(
	ctx context.Context, cmd ValidateMissionCommand,
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

	if err = missionOrder.ValidateMission(cmd.Actor(), cmd.Payload(), time.Now().UTC()); err != nil {
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
