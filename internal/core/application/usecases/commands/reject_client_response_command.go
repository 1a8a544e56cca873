package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrRejectClientResponseCommandIsNotConstructed = errors.New(
	"RejectClientResponseCommand must be created via NewRejectClientResponseCommand constructor",
)

// RejectClientResponseCommand represents the paying party declining the
// pricing of a mission awaiting client approval. The written reason is
// forwarded to the crew member.
type RejectClientResponseCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectClientResponseCommand creates a command to record a client rejection.
// Validates that the mission ID and the actor are valid and the reason is
// not empty.
func NewRejectClientResponseCommand(
	missionID kernel.UUID, actor kernel.Actor, reason string,
) (RejectClientResponseCommand, error) {
	missionCommand := RejectClientResponseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
		missionCommand.setReason(reason),
	); err != nil {
		return RejectClientResponseCommand{}, err
	}

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectClientResponseCommand) Validate() error {
	return c.guard.Validate(ErrRejectClientResponseCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission.
func (c RejectClientResponseCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller recording the client response.
func (c RejectClientResponseCommand) Actor() kernel.Actor {
	return c.actor
}

// Reason returns the client's written rejection reason.
func (c RejectClientResponseCommand) Reason() string {
	return c.reason
}

func (c *RejectClientResponseCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *RejectClientResponseCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectClientResponseCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
