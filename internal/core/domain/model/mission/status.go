package mission

import (
	"missions/internal/pkg/errs"
)

// Status represents the lifecycle state of a mission order.
// It implements a state machine with defined transitions so that missions
// follow the staffing workflow from creation through financial review,
// client approval, crew assignment, execution and post-mission validation.
//
// Creation can enter the workflow at three different points depending on how
// far the client-facing pricing has been prepared:
//
//	PendingApproval ──────────────┐
//	PendingFinanceReview ─────────┼──> Approved ──> PendingExecution ──> InProgress ──> MissionOver
//	PendingClientApproval ──┬─────┘         │
//	                        └──> ClientRejected
//	                                        │ (completion sweep, contract end date passed)
//	                                        v
//	                             PendingValidation ──> Validated
//	                                        │               ^
//	                                        v               │ (date modification approved)
//	                             PendingDateModification ───┘
//
// Reject is reachable from every status. Status is the single source of
// truth for which operations are legal; nothing outside the transition
// methods may mutate it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendingApproval is the default initial status for a mission
	// created without billing data and without a finance-review request.
	StatusPendingApproval

	// StatusPendingFinanceReview is the initial status for a mission whose
	// creator explicitly marked it for finance review.
	StatusPendingFinanceReview

	// StatusPendingClientApproval is the initial status for a mission
	// created with billing data already prepared; the paying party must
	// accept the pricing before the mission is finalized.
	StatusPendingClientApproval

	// StatusApproved indicates the mission passed its approval gate and is
	// ready for crew assignment.
	StatusApproved

	// StatusClientRejected indicates the paying party rejected the pricing.
	StatusClientRejected

	// StatusRejected indicates an admin rejected the mission.
	StatusRejected

	// StatusPendingExecution indicates a crew member is assigned and the
	// mission awaits its start.
	StatusPendingExecution

	// StatusInProgress indicates the mission is being executed.
	StatusInProgress

	// StatusMissionOver indicates execution finished and the crew member
	// still has to validate the mission.
	StatusMissionOver

	// StatusPendingValidation indicates the mission awaits crew sign-off.
	// Reached by the completion sweep once the contracted end date passed.
	StatusPendingValidation

	// StatusPendingDateModification indicates an outstanding request to
	// change the contract dates awaits an admin decision.
	StatusPendingDateModification

	// StatusValidated is the terminal status: the crew member signed the
	// mission off. Validated missions are retained for audit and export.
	StatusValidated
)

// getStatusStrings returns the wire representation of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:                 "unknown",
		StatusPendingApproval:         "pending_approval",
		StatusPendingFinanceReview:    "pending_finance_review",
		StatusPendingClientApproval:   "pending_client_approval",
		StatusApproved:                "approved",
		StatusClientRejected:          "client_rejected",
		StatusRejected:                "rejected",
		StatusPendingExecution:        "pending_execution",
		StatusInProgress:              "in_progress",
		StatusMissionOver:             "mission_over",
		StatusPendingValidation:       "pending_validation",
		StatusPendingDateModification: "pending_date_modification",
		StatusValidated:               "validated",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// String returns the wire name of the status, e.g. "pending_execution".
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusValidated {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// ApproveClientResponse transitions the status to Approved after the paying
// party accepted the pricing. Only legal from PendingClientApproval.
func (s Status) ApproveClientResponse() (Status, error) {
	if s != StatusPendingClientApproval {
		return 0, errs.NewStatusPreconditionError(
			"approveClientResponse", s.String(), StatusPendingClientApproval.String())
	}
	return StatusApproved, nil
}

// RejectClientResponse transitions the status to ClientRejected after the
// paying party declined the pricing. Only legal from PendingClientApproval.
func (s Status) RejectClientResponse() (Status, error) {
	if s != StatusPendingClientApproval {
		return 0, errs.NewStatusPreconditionError(
			"rejectClientResponse", s.String(), StatusPendingClientApproval.String())
	}
	return StatusClientRejected, nil
}

// AssignToCrew transitions the status to PendingExecution.
// Only approved missions may be assigned.
func (s Status) AssignToCrew() (Status, error) {
	if s != StatusApproved {
		return 0, errs.NewStatusPreconditionError(
			"assignToCrew", s.String(), StatusApproved.String())
	}
	return StatusPendingExecution, nil
}

// StartExecution transitions the status to InProgress.
// Only legal from PendingExecution.
func (s Status) StartExecution() (Status, error) {
	if s != StatusPendingExecution {
		return 0, errs.NewStatusPreconditionError(
			"startExecution", s.String(), StatusPendingExecution.String())
	}
	return StatusInProgress, nil
}

// CompleteExecution transitions the status to MissionOver.
// Only legal from InProgress.
func (s Status) CompleteExecution() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewStatusPreconditionError(
			"completeExecution", s.String(), StatusInProgress.String())
	}
	return StatusMissionOver, nil
}

// ValidateMission checks that crew sign-off is legal from the current status.
// Sign-off is accepted while the mission awaits validation or while a date
// modification is outstanding; the resulting status depends on the payload
// and is decided by the aggregate.
func (s Status) ValidateMission() error {
	if s != StatusPendingValidation && s != StatusPendingDateModification {
		return errs.NewStatusPreconditionError(
			"validate", s.String(),
			StatusPendingValidation.String(), StatusPendingDateModification.String())
	}
	return nil
}

// SweepToValidation transitions the status to PendingValidation when the
// contracted end date has passed. Only approved missions are swept: a
// mission already assigned to crew follows the explicit execution path and
// must never be touched by the sweep.
func (s Status) SweepToValidation() (Status, error) {
	if s != StatusApproved {
		return 0, errs.NewStatusPreconditionError(
			"completionSweep", s.String(), StatusApproved.String())
	}
	return StatusPendingValidation, nil
}
