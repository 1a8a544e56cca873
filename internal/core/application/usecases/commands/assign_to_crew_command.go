package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrAssignToCrewCommandIsNotConstructed = errors.New(
	"AssignToCrewCommand must be created via NewAssignToCrewCommand constructor",
)

// AssignToCrewCommand represents a request to hand an approved mission over
// to its crew member for execution.
type AssignToCrewCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewAssignToCrewCommand creates a command to assign a mission to its crew.
// Validates that the mission ID and the actor are valid.
func NewAssignToCrewCommand(missionID kernel.UUID, actor kernel.Actor) (AssignToCrewCommand, error) {
	missionCommand := AssignToCrewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
	); err != nil {
		return AssignToCrewCommand{}, err
	}

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignToCrewCommand) Validate() error {
	return c.guard.Validate(ErrAssignToCrewCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission to assign.
func (c AssignToCrewCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller assigning the mission.
func (c AssignToCrewCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AssignToCrewCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *AssignToCrewCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
