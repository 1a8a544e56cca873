package commands

import (
	"errors"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var (
	ErrCompleteExecutionCommandIsNotConstructed = errors.New(
		"CompleteExecutionCommand must be created via NewCompleteExecutionCommand constructor",
	)
	ErrActualEndDateIsRequired = errors.New("actual end date is required")
)

// CompleteExecutionCommand represents the crew member reporting the end of a
// mission. When the actual end date differs from the contracted one the
// extension reason becomes mandatory, enforced by the aggregate.
type CompleteExecutionCommand struct { //nolint:recvcheck //using for validation
	missionID       kernel.UUID
	actor           kernel.Actor
	actualEndDate   time.Time
	extensionReason string

	guard guard.ConstructorGuard
}

// NewCompleteExecutionCommand creates a command to complete mission execution.
// Validates that the mission ID and the actor are valid and an actual end
// date is given. The extension reason may be empty for on-time completions.
func NewCompleteExecutionCommand(
	missionID kernel.UUID, actor kernel.Actor, actualEndDate time.Time, extensionReason string,
) (CompleteExecutionCommand, error) {
	missionCommand := CompleteExecutionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setActor(actor),
		missionCommand.setActualEndDate(actualEndDate),
	); err != nil {
		return CompleteExecutionCommand{}, err
	}

	missionCommand.extensionReason = extensionReason

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteExecutionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteExecutionCommandIsNotConstructed)
}

// MissionID returns the unique identifier of the mission to complete.
func (c CompleteExecutionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// Actor returns the authenticated caller completing the mission.
func (c CompleteExecutionCommand) Actor() kernel.Actor {
	return c.actor
}

// ActualEndDate returns the date execution actually ended.
func (c CompleteExecutionCommand) ActualEndDate() time.Time {
	return c.actualEndDate
}

// ExtensionReason returns the written reason for running past the contracted
// end date. Empty for on-time completions.
func (c CompleteExecutionCommand) ExtensionReason() string {
	return c.extensionReason
}

func (c *CompleteExecutionCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *CompleteExecutionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CompleteExecutionCommand) setActualEndDate(actualEndDate time.Time) error {
	if actualEndDate.IsZero() {
		return ErrActualEndDateIsRequired
	}

	c.actualEndDate = actualEndDate
	return nil
}
