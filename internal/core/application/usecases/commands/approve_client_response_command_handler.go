package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// ApproveClientResponseCommandHandler records that the paying party accepted
// the pricing, finalizing the mission.
type ApproveClientResponseCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewApproveClientResponseCommandHandler creates a handler for client acceptances.
func NewApproveClientResponseCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) ApproveClientResponseCommandHandler {
	return ApproveClientResponseCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the client acceptance command.
func (h ApproveClientResponseCommandHandler) Handle(
	ctx context.Context, cmd ApproveClientResponseCommand,
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

	if err = missionOrder.ApproveClientResponse(cmd.Actor(), time.Now().UTC()); err != nil {
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
