package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var (
	ErrRejectMissionCommandIsNotConstructed = errors.New(
		"RejectMissionCommand must be created via NewRejectMissionCommand constructor",
	)
	ErrRejectionReasonIsRequired = errors.New("rejection reason is required")
)

// RejectMissionCommand represents a request to reject a mission.
// Rejection is legal from any lifecycle status and always carries a written
// reason, which is forwarded to the crew member.
type RejectMissionCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectMissionCommand creates a command to reject a mission.
// Validates that the mission ID and the actor are valid and the reason is
// not empty.
func NewRejectMissionCommand(
	missionID kernel.UUID, actor kernel.Actor, reason string,
) (RejectMissionCommand, error) {
	missionCommand := RejectMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
		missionCommand.setReason(reason),
	); err != nil {
		return RejectMissionCommand{}, err
	}

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectMissionCommandIsNotConstructed if validation fails.
func (c RejectMissionCommand) Validate() error {
	return c.guard.Validate(ErrRejectMissionCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission to reject.
func (c RejectMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller rejecting the mission.
func (c RejectMissionCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the written rejection reason.
func (c RejectMissionCommand) Reason() string {
	return c.reason
}

func (c *RejectMissionCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *RejectMissionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectMissionCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
