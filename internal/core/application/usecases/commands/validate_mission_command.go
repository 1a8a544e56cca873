package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"
	"missions/internal/pkg/guard"
)

var (
	ErrValidateMissionCommandIsNotConstructed = errors.New(
		"ValidateMissionCommand must be created via NewValidateMissionCommand constructor",
	)
	ErrDateChangeReasonIsRequired = errors.New("date change reason is required")
)

// ValidateMissionCommand represents the crew member's post-mission sign-off.
// The payload may confirm the mission as-is, report payment issues, or
// request different dates, which routes the mission through the
// date-modification flow instead of closing it.
type ValidateMissionCommand struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID
	actor     kernel.Actor
	payload   mission.ValidationPayload

	guard guard.ConstructorGuard
}

// NewValidateMissionCommand creates a command to record a crew sign-off.
// Validates that the mission ID and the actor are valid; a payload that
// requests new dates must carry a reason for the change.
func NewValidateMissionCommand(
	missionID kernel.UUID, actor kernel.Actor, payload mission.ValidationPayload,
) (ValidateMissionCommand, error) {
	missionCommand := ValidateMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
		missionCommand.setPayload(payload),
	); err != nil {
		return ValidateMissionCommand{}, err
	}

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateMissionCommand) Validate() error {
	return c.guard.Validate(ErrValidateMissionCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission to sign off.
func (c ValidateMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller signing the mission off.
func (c ValidateMissionCommand) Actor() kernel.Actor {
	return c.actor
}

// Payload returns the sign-off details.
func (c ValidateMissionCommand) Payload() mission.ValidationPayload {
	return c.payload
}

func (c *ValidateMissionCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *ValidateMissionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ValidateMissionCommand) setPayload(payload mission.ValidationPayload) error {
	if payload.RequestedDates != nil {
		if err := payload.RequestedDates.Validate(); err != nil {
			return err
		}
		if payload.DateChangeReason == "" {
			return ErrDateChangeReasonIsRequired
		}
	}

	c.payload = payload
	return nil
}
