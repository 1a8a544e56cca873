package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// RequestDateModificationCommandHandler raises or overwrites the single
// outstanding date-change request on a mission.
type RequestDateModificationCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewRequestDateModificationCommandHandler creates a handler for date-change requests.
func NewRequestDateModificationCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) RequestDateModificationCommandHandler {
	return RequestDateModificationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the date-change request command.
func (h RequestDateModificationCommandHandler) Handle(
	ctx context.Context, cmd RequestDateModificationCommand,
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

	err = missionOrder.RequestDateModification(
		cmd.Actor(), cmd.Requested(), cmd.Reason(), time.Now().UTC())
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
