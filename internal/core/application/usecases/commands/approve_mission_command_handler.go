package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// ApproveMissionCommandHandler handles the business logic for mission approval.
// Loads the aggregate, applies the transition and persists the new state, then
// dispatches the notifications the transition produced.
//
// Example:
//
//	handler := NewApproveMissionCommandHandler(uowFactory, notifier)
//	cmd, _ := NewApproveMissionCommand(missionID, actor)
//	missionOrder, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("mission approval failed: %w", err)
//	}
type ApproveMissionCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewApproveMissionCommandHandler creates a handler for mission approval operations.
func NewApproveMissionCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) ApproveMissionCommandHandler {
	return ApproveMissionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the mission approval command and returns the mission in
// its new state.
// Notifications go out only after the transaction committed; a delivery
// failure never rolls the approval back.
func (h ApproveMissionCommandHandler) Handle(
	ctx context.Context, cmd ApproveMissionCommand,
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

	if err = missionOrder.Approve(cmd.Actor(), time.Now().UTC()); err != nil {
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
