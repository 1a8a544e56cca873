package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrResolveDateModificationCommandIsNotConstructed = errors.New(
	"ResolveDateModificationCommand must be created via NewResolveDateModificationCommand constructor",
)

// ResolveDateModificationCommand represents an admin decision on the
// outstanding date-change request of a mission.
type ResolveDateModificationCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor
	approve   bool

	guard guard.ConstructorGuard
}

// NewResolveDateModificationCommand creates a command to decide a date-change request.
// Validates that the mission ID and the actor are valid.
func NewResolveDateModificationCommand(
	missionID kernel.UUID, actor kernel.Actor, approve bool,
) (ResolveDateModificationCommand, error) {
	missionCommand := ResolveDateModificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
	); err != nil {
		return ResolveDateModificationCommand{}, err
	}

	missionCommand.approve = approve

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDateModificationCommand) Validate() error {
	return c.guard.Validate(ErrResolveDateModificationCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission.
func (c ResolveDateModificationCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated admin deciding the request.
func (c ResolveDateModificationCommand) Actor() kernel.Actor {
	return c.actor
}

// Approve reports whether the request is approved or rejected.
func (c ResolveDateModificationCommand) Approve() bool {
	return c.approve
}

func (c *ResolveDateModificationCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *ResolveDateModificationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
