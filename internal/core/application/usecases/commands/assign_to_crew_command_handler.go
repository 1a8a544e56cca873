package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// AssignToCrewCommandHandler hands an approved mission over to its crew
// member. A freelancer without a negotiated contract gets a zero-hour
// contract synthesized by the aggregate during this transition.
type AssignToCrewCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewAssignToCrewCommandHandler creates a handler for crew assignment operations.
func NewAssignToCrewCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) AssignToCrewCommandHandler {
	return AssignToCrewCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the crew assignment command.
func (h AssignToCrewCommandHandler) Handle(
	ctx context.Context, cmd AssignToCrewCommand,
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

	if err = missionOrder.AssignToCrew(cmd.Actor(), time.Now().UTC()); err != nil {
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
