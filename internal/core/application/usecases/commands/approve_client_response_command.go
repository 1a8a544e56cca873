package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrApproveClientResponseCommandIsNotConstructed = errors.New(
	"ApproveClientResponseCommand must be created via NewApproveClientResponseCommand constructor",
)

// ApproveClientResponseCommand represents the paying party accepting the
// pricing of a mission awaiting client approval.
type ApproveClientResponseCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewApproveClientResponseCommand creates a command to record a client acceptance.
// Validates that the mission ID and the actor are valid.
func NewApproveClientResponseCommand(
	missionID kernel.UUID, actor kernel.Actor,
) (ApproveClientResponseCommand, error) {
	missionCommand := ApproveClientResponseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
	); err != nil {
		return ApproveClientResponseCommand{}, err
	}

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveClientResponseCommand) Validate() error {
	return c.guard.Validate(ErrApproveClientResponseCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission.
func (c ApproveClientResponseCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller recording the client response.
func (c ApproveClientResponseCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ApproveClientResponseCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *ApproveClientResponseCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
