package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
)

// SweepCompletedMissionsCommandHandler advances every approved mission whose
// contracted end date has passed to validation, in one transaction.
//
// Example:
//
//	handler := NewSweepCompletedMissionsCommandHandler(uowFactory, notifier)
//	advanced, err := handler.Handle(ctx, NewSweepCompletedMissionsCommand())
//	if err != nil {
//	    return fmt.Errorf("completion sweep failed: %w", err)
//	}
//	log.Printf("%d missions advanced to validation", advanced)
type SweepCompletedMissionsCommandHandler struct {
	uowFactory MissionUoWFactory
	notifier   ports.Notifier
}

// NewSweepCompletedMissionsCommandHandler creates a handler for the completion sweep.
func NewSweepCompletedMissionsCommandHandler(
	uowFactory MissionUoWFactory, notifier ports.Notifier,
) SweepCompletedMissionsCommandHandler {
	return SweepCompletedMissionsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion sweep command and returns the number of
// missions advanced to validation. A mission that fails its own transition
// is skipped; the sweep still advances the rest. A storage failure aborts
// the whole sweep and rolls every advance back, since a failed statement
// leaves the surrounding transaction unusable.
func (h SweepCompletedMissionsCommandHandler) Handle(
	ctx context.Context, cmd SweepCompletedMissionsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	missionRepo := uow.MissionRepository()
	missions, err := missionRepo.GetApprovedEndingBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	var events []mission.Event
	advanced := 0
	for _, missionOrder := range missions {
		if err = missionOrder.SweepToValidation(now); err != nil {
			continue
		}

		if err = missionRepo.Update(ctx, missionOrder); err != nil {
			return 0, err
		}

		events = append(events, missionOrder.PullEvents()...)
		advanced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	_ = h.notifier.Dispatch(ctx, events)

	return advanced, nil
}
