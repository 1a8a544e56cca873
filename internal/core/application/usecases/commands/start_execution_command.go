package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrStartExecutionCommandIsNotConstructed = errors.New(
	"StartExecutionCommand must be created via NewStartExecutionCommand constructor",
)

// StartExecutionCommand represents the crew member starting an assigned
// mission.
type StartExecutionCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewStartExecutionCommand creates a command to start mission execution.
// Validates that the mission ID and the actor are valid.
func NewStartExecutionCommand(missionID kernel.UUID, actor kernel.Actor) (StartExecutionCommand, error) {
	missionCommand := StartExecutionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
	); err != nil {
		return StartExecutionCommand{}, err
	}

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartExecutionCommand) Validate() error {
	return c.guard.Validate(ErrStartExecutionCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission to start.
func (c StartExecutionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller starting the mission.
func (c StartExecutionCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *StartExecutionCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *StartExecutionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
