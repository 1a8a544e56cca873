package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrApproveMissionCommandIsNotConstructed = errors.New(
	"ApproveMissionCommand must be created via NewApproveMissionCommand constructor",
)

// ApproveMissionCommand represents a request to approve a pending mission.
// Approval is idempotent: approving an already approved mission is a no-op.
type ApproveMissionCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewApproveMissionCommand creates a command to approve a mission.
// Validates that the mission ID and the actor are valid.
func NewApproveMissionCommand(missionID kernel.UUID, actor kernel.Actor) (ApproveMissionCommand, error) {
	missionCommand := ApproveMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
	); err != nil {
		return ApproveMissionCommand{}, err
	}

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApproveMissionCommandIsNotConstructed if validation fails.
func (c ApproveMissionCommand) Validate() error {
	return c.guard.Validate(ErrApproveMissionCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission to approve.
func (c ApproveMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller approving the mission.
func (c ApproveMissionCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ApproveMissionCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *ApproveMissionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
