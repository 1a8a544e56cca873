package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrRequestDateModificationCommandIsNotConstructed = errors.New(
	"RequestDateModificationCommand must be created via NewRequestDateModificationCommand constructor",
)

// RequestDateModificationCommand represents a request to change a mission's
// contract dates. A mission holds at most one outstanding request: a later
// request overwrites the current one.
type RequestDateModificationCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor
	requested kernel.DateRange
	reason    string

	guard guard.ConstructorGuard
}

// NewRequestDateModificationCommand creates a command to request new mission dates.
// Validates that the mission ID, the actor and the requested range are valid
// and a reason is given.
func NewRequestDateModificationCommand(
	missionID kernel.UUID, actor kernel.Actor, requested kernel.DateRange, reason string,
) (RequestDateModificationCommand, error) {
	missionCommand := RequestDateModificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
		missionCommand.setRequested(requested),
		missionCommand.setReason(reason),
	); err != nil {
		return RequestDateModificationCommand{}, err
	}

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDateModificationCommand) Validate() error {
	return c.guard.Validate(ErrRequestDateModificationCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission.
func (c RequestDateModificationCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller requesting the change.
func (c RequestDateModificationCommand) Actor() kernel.Actor {
	return c.actor
}

// Requested returns the desired contract dates.
func (c RequestDateModificationCommand) Requested() kernel.DateRange {
	return c.requested
}

// Reason returns the written motive for the change.
func (c RequestDateModificationCommand) Reason() string {
	return c.reason
}

func (c *RequestDateModificationCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *RequestDateModificationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RequestDateModificationCommand) setRequested(requested kernel.DateRange) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	c.requested = requested
	return nil
}

func (c *RequestDateModificationCommand) setReason(reason string) error {
	if reason == "" {
		return ErrDateChangeReasonIsRequired
	}

	c.reason = reason
	return nil
}
