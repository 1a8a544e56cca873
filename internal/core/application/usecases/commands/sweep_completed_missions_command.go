package commands

import (
	"errors"

	"missions/internal/pkg/guard"
)

var ErrSweepCompletedMissionsCommandIsNotConstructed = errors.New(
	"SweepCompletedMissionsCommand must be created via NewSweepCompletedMissionsCommand constructor",
)

// SweepCompletedMissionsCommand triggers the date-based completion sweep.
// The sweep advances approved missions whose contracted end date has passed
// to validation, so their crew members are asked to sign off. Missions
// already assigned to crew follow the explicit execution path and are never
// touched by the sweep.
//
// Example:
//
//	cmd := NewSweepCompletedMissionsCommand()
//	handler := NewSweepCompletedMissionsCommandHandler(uowFactory, notifier)
//	advanced, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Completion sweep failed: %v", err)
//	}
type SweepCompletedMissionsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepCompletedMissionsCommand creates a new command to trigger the completion sweep.
// This is a parameterless command; the sweep moment is taken at execution time.
func NewSweepCompletedMissionsCommand() SweepCompletedMissionsCommand {
	return SweepCompletedMissionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepCompletedMissionsCommandIsNotConstructed if validation fails.
func (c *SweepCompletedMissionsCommand) Validate() error {
	return c.guard.Validate(
		ErrSweepCompletedMissionsCommandIsNotConstructed,
	)
}
