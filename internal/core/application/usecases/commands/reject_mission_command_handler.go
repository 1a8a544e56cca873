package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// RejectMissionCommandHandler handles the business logic for mission rejection.
type RejectMissionCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewRejectMissionCommandHandler creates a handler for mission rejection operations.
func NewRejectMissionCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) RejectMissionCommandHandler {
	return RejectMissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the mission rejection command.
// The crew member is notified with the written reason after the transaction
// committed.
func (h RejectMissionCommandHandler) Handle(
	ctx context.Context, cmd RejectMissionCommand,
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

	if err = missionOrder.Reject(cmd.Actor(), cmd.Reason(), time.Now().UTC()); err != nil {
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
