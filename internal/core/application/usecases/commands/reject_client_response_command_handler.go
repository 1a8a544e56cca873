package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// RejectClientResponseCommandHandler records that the paying party declined
// the pricing.
type RejectClientResponseCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewRejectClientResponseCommandHandler creates a handler for client rejections.
func NewRejectClientResponseCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) RejectClientResponseCommandHandler {
	return RejectClientResponseCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the client rejection command.
func (h RejectClientResponseCommandHandler) Handle(
	ctx context.Context, cmd RejectClientResponseCommand,
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

	if err = missionOrder.RejectClientResponse(cmd.Actor(), cmd.Reason(), time.Now().UTC()); err != nil {
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
