package commands

import (
	"context"
	"time"

	"missions/internal/core/domain/model/mission"
)

// CreateMissionCommandHandler handles the business logic for mission creation.
// The aggregate decides the initial status from the supplied billing data and
// the finance-review flag.
//
// Example:
//
//	handler := NewCreateMissionCommandHandler(uowFactory)
//	cmd, _ := NewCreateMissionCommand(missionID, mission.TypeFreelance, actor,
//	    crew, aircraft, nil, contract, nil, false, nil, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("mission creation failed: %w", err)
//	}
type CreateMissionCommandHandler struct {
	uowFactory MissionUoWFactory
}

// NewCreateMissionCommandHandler creates a handler for mission creation operations.
// Requires a MissionUoWFactory for transactional persistence.
func NewCreateMissionCommandHandler(uowFactory MissionUoWFactory) CreateMissionCommandHandler {
	return CreateMissionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mission creation command.
// Builds the aggregate, which enforces role and type-specific invariants, and
// persists it within a transaction.
func (h CreateMissionCommandHandler) Handle(ctx context.Context, cmd CreateMissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newMission, err := mission.NewMissionOrder(
		cmd.MissionID(),
		cmd.MissionType(),
		cmd.Actor(),
		cmd.Crew(),
		cmd.Aircraft(),
		cmd.Flights(),
		cmd.Contract(),
		cmd.EmailData(),
		cmd.FinanceReview(),
		cmd.OwnerApproval(),
		cmd.ServiceInvoice(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MissionRepository().Add(ctx, newMission); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
