package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// ResolveDateModificationCommandHandler applies an admin decision to the
// outstanding date-change request. Approval overwrites the contract dates;
// rejection leaves the mission untouched apart from the request itself.
type ResolveDateModificationCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewResolveDateModificationCommandHandler creates a handler for date-change decisions.
func NewResolveDateModificationCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) ResolveDateModificationCommandHandler {
	return ResolveDateModificationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the date-change decision command.
func (h ResolveDateModificationCommandHandler) Handle(
	ctx context.Context, cmd ResolveDateModificationCommand,
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

	if err = missionOrder.ResolveDateModification(cmd.Actor(), cmd.Approve(), time.Now().UTC()); err != nil {
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
