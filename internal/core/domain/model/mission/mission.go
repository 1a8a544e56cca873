package mission

import (
	"errors"
	"fmt"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/errs"
)

// ErrMissionIsNotConstructed is returned when a MissionOrder instance was
// not created through NewMissionOrder or RestoreMissionOrder.
var ErrMissionIsNotConstructed = errors.New(
	"MissionOrder must be created via NewMissionOrder or RestoreMissionOrder constructor")

// MissionOrder is the aggregate root representing one temporary staffing
// assignment, from creation through financial review, client approval, crew
// assignment, execution and post-mission validation.
//
// MissionOrder follows these invariants:
//   - status only changes through the named transition methods
//   - an unlocked salary or per diem always carries an override comment
//   - the contract end date never precedes the start date
//   - at most one non-resolved date-modification request exists at any time
//   - type-specific sub-records match the mission type (service invoice for
//     service missions, owner approval for extra-day missions)
//
// Every transition validates the actor's role, then the status
// precondition, and only then mutates; a failed transition leaves the
// aggregate untouched. Each successful transition records the notification
// events it owes, drained with PullEvents after commit.
//
// The version field supports optimistic concurrency: the repository only
// writes a snapshot whose version matches the stored one and bumps it on
// every write, so two concurrent transitions on the same mission cannot
// silently overwrite each other.
type MissionOrder struct {
	id          kernel.UUID
	version     int
	missionType Type
	status      Status

	crew     CrewMember
	aircraft Aircraft
	flights  []FlightLeg
	contract *Contract

	emailData        *EmailData
	validation       *ValidationRecord
	dateModification *DateModificationRequest
	ownerApproval    *OwnerApproval
	serviceInvoice   *ServiceInvoice

	actualEndDate   *time.Time
	wasExtended     bool
	extensionReason string

	createdAt time.Time
	createdBy kernel.UUID

	approvedAt           *time.Time
	approvedBy           *kernel.UUID
	rejectedAt           *time.Time
	rejectedBy           *kernel.UUID
	rejectionReason      string
	clientApprovedAt     *time.Time
	clientRejectedAt     *time.Time
	assignedToCrewAt     *time.Time
	executionStartedAt   *time.Time
	executionCompletedAt *time.Time
	validatedAt          *time.Time

	events []Event

	isConstructed bool
}

// NewMissionOrder creates a mission order. Only admins create missions.
//
// The initial status depends on how far the client-facing pricing has been
// prepared by the caller:
//   - billing data supplied            -> PendingClientApproval
//   - finance review explicitly asked  -> PendingFinanceReview
//   - otherwise                        -> PendingApproval
//
// The contract may be nil for freelance engagements negotiated later; a
// zero-hour contract is synthesized at crew assignment in that case.
func NewMissionOrder(
	id kernel.UUID,
	missionType Type,
	createdBy kernel.Actor,
	crew CrewMember,
	aircraft Aircraft,
	flights []FlightLeg,
	contract *Contract,
	emailData *EmailData,
	financeReview bool,
	ownerApproval *OwnerApproval,
	serviceInvoice *ServiceInvoice,
	now time.Time,
) (*MissionOrder, error) {
	if err := createdBy.Validate(); err != nil {
		return nil, err
	}
	if !createdBy.IsAdmin() {
		return nil, errs.NewAuthorizationError("create", createdBy.Role().String())
	}

	if err := errors.Join(
		id.Validate(),
		missionType.Validate(),
		crew.Validate(),
		aircraft.Validate(),
	); err != nil {
		return nil, err
	}

	for _, leg := range flights {
		if err := leg.Validate(); err != nil {
			return nil, err
		}
	}

	if contract != nil {
		if err := contract.Validate(); err != nil {
			return nil, err
		}
	}
	if emailData != nil {
		if err := emailData.Validate(); err != nil {
			return nil, err
		}
	}

	if ownerApproval != nil {
		if missionType != TypeExtraDay {
			return nil, errs.NewValueIsInvalidErrorWithCause("ownerApproval",
				fmt.Errorf("owner approval is only meaningful for %s missions", TypeExtraDay))
		}
		if err := ownerApproval.Validate(); err != nil {
			return nil, err
		}
	}
	if serviceInvoice != nil {
		if missionType != TypeService {
			return nil, errs.NewValueIsInvalidErrorWithCause("serviceInvoice",
				fmt.Errorf("service invoice is only meaningful for %s missions", TypeService))
		}
		if err := serviceInvoice.Validate(); err != nil {
			return nil, err
		}
	}

	status := StatusPendingApproval
	switch {
	case emailData != nil:
		status = StatusPendingClientApproval
	case financeReview:
		status = StatusPendingFinanceReview
	}

	legs := make([]FlightLeg, len(flights))
	copy(legs, flights)

	return &MissionOrder{
		id:             id,
		version:        1,
		missionType:    missionType,
		status:         status,
		crew:           crew,
		aircraft:       aircraft,
		flights:        legs,
		contract:       contract,
		emailData:      emailData,
		ownerApproval:  ownerApproval,
		serviceInvoice: serviceInvoice,
		createdAt:      now,
		createdBy:      createdBy.ID(),
		isConstructed:  true,
	}, nil
}

// RestoreMissionOrderParams carries the persisted state needed to rebuild
// a mission order. Used by repository implementations only.
type RestoreMissionOrderParams struct {
	ID          kernel.UUID
	Version     int
	MissionType Type
	Status      Status

	Crew     CrewMember
	Aircraft Aircraft
	Flights  []FlightLeg
	Contract *Contract

	EmailData        *EmailData
	Validation       *ValidationRecord
	DateModification *DateModificationRequest
	OwnerApproval    *OwnerApproval
	ServiceInvoice   *ServiceInvoice

	ActualEndDate   *time.Time
	WasExtended     bool
	ExtensionReason string

	CreatedAt time.Time
	CreatedBy kernel.UUID

	ApprovedAt           *time.Time
	ApprovedBy           *kernel.UUID
	RejectedAt           *time.Time
	RejectedBy           *kernel.UUID
	RejectionReason      string
	ClientApprovedAt     *time.Time
	ClientRejectedAt     *time.Time
	AssignedToCrewAt     *time.Time
	ExecutionStartedAt   *time.Time
	ExecutionCompletedAt *time.Time
	ValidatedAt          *time.Time
}

// RestoreMissionOrder rebuilds a mission order from persistence.
// Unlike NewMissionOrder it accepts any lifecycle status, but still
// validates the structural invariants of the snapshot.
func RestoreMissionOrder(params RestoreMissionOrderParams) (*MissionOrder, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.MissionType.Validate(),
		params.Status.Validate(),
		params.Crew.Validate(),
		params.Aircraft.Validate(),
	); err != nil {
		return nil, err
	}

	if params.Version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a positive version", params.Version))
	}

	return &MissionOrder{
		id:                   params.ID,
		version:              params.Version,
		missionType:          params.MissionType,
		status:               params.Status,
		crew:                 params.Crew,
		aircraft:             params.Aircraft,
		flights:              params.Flights,
		contract:             params.Contract,
		emailData:            params.EmailData,
		validation:           params.Validation,
		dateModification:     params.DateModification,
		ownerApproval:        params.OwnerApproval,
		serviceInvoice:       params.ServiceInvoice,
		actualEndDate:        params.ActualEndDate,
		wasExtended:          params.WasExtended,
		extensionReason:      params.ExtensionReason,
		createdAt:            params.CreatedAt,
		createdBy:            params.CreatedBy,
		approvedAt:           params.ApprovedAt,
		approvedBy:           params.ApprovedBy,
		rejectedAt:           params.RejectedAt,
		rejectedBy:           params.RejectedBy,
		rejectionReason:      params.RejectionReason,
		clientApprovedAt:     params.ClientApprovedAt,
		clientRejectedAt:     params.ClientRejectedAt,
		assignedToCrewAt:     params.AssignedToCrewAt,
		executionStartedAt:   params.ExecutionStartedAt,
		executionCompletedAt: params.ExecutionCompletedAt,
		validatedAt:          params.ValidatedAt,
		isConstructed:        true,
	}, nil
}

// Validate ensures the MissionOrder was properly constructed.
func (m *MissionOrder) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMissionIsNotConstructed
	}
	return nil
}

// IsEqual compares two mission orders by their unique identifiers.
func (m *MissionOrder) IsEqual(other *MissionOrder) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the mission's unique identifier.
func (m *MissionOrder) ID() kernel.UUID { return m.id }

// Version returns the optimistic-concurrency version of the loaded snapshot.
func (m *MissionOrder) Version() int { return m.version }

// MissionType returns the mission's kind.
func (m *MissionOrder) MissionType() Type { return m.missionType }

// Status returns the current lifecycle status.
func (m *MissionOrder) Status() Status { return m.status }

// Crew returns the assigned crew member snapshot.
func (m *MissionOrder) Crew() CrewMember { return m.crew }

// Aircraft returns the aircraft snapshot.
func (m *MissionOrder) Aircraft() Aircraft { return m.aircraft }

// Flights returns the ordered flight schedule. May be empty.
func (m *MissionOrder) Flights() []FlightLeg {
	legs := make([]FlightLeg, len(m.flights))
	copy(legs, m.flights)
	return legs
}

// Contract returns the mission contract. Nil until negotiated or synthesized.
func (m *MissionOrder) Contract() *Contract { return m.contract }

// EmailData returns the billing snapshot for the paying party. May be nil.
func (m *MissionOrder) EmailData() *EmailData { return m.emailData }

// ValidationRecord returns the crew sign-off. Nil until validated.
func (m *MissionOrder) ValidationRecord() *ValidationRecord { return m.validation }

// DateModification returns the single outstanding or last resolved
// date-change request. Nil if none was ever raised.
func (m *MissionOrder) DateModification() *DateModificationRequest { return m.dateModification }

// OwnerApproval returns the owner sign-off of an extra-day mission.
func (m *MissionOrder) OwnerApproval() *OwnerApproval { return m.ownerApproval }

// ServiceInvoice returns the invoice of a service mission.
func (m *MissionOrder) ServiceInvoice() *ServiceInvoice { return m.serviceInvoice }

// ActualEndDate returns the recorded actual end of execution. Nil until
// execution completed.
func (m *MissionOrder) ActualEndDate() *time.Time { return m.actualEndDate }

// WasExtended reports whether execution ran past the contracted end date.
func (m *MissionOrder) WasExtended() bool { return m.wasExtended }

// ExtensionReason returns the written reason for an extension.
func (m *MissionOrder) ExtensionReason() string { return m.extensionReason }

// CreatedAt returns when the mission was created.
func (m *MissionOrder) CreatedAt() time.Time { return m.createdAt }

// CreatedBy returns the admin who created the mission.
func (m *MissionOrder) CreatedBy() kernel.UUID { return m.createdBy }

// ApprovedAt returns when the mission was approved. Nil until approved.
func (m *MissionOrder) ApprovedAt() *time.Time { return m.approvedAt }

// ApprovedBy returns the admin who approved the mission.
func (m *MissionOrder) ApprovedBy() *kernel.UUID { return m.approvedBy }

// RejectedAt returns when the mission was rejected.
func (m *MissionOrder) RejectedAt() *time.Time { return m.rejectedAt }

// RejectedBy returns the admin who rejected the mission.
func (m *MissionOrder) RejectedBy() *kernel.UUID { return m.rejectedBy }

// RejectionReason returns the written rejection reason.
func (m *MissionOrder) RejectionReason() string { return m.rejectionReason }

// ClientApprovedAt returns when the paying party accepted the pricing.
func (m *MissionOrder) ClientApprovedAt() *time.Time { return m.clientApprovedAt }

// ClientRejectedAt returns when the paying party declined the pricing.
func (m *MissionOrder) ClientRejectedAt() *time.Time { return m.clientRejectedAt }

// AssignedToCrewAt returns when the mission was assigned.
func (m *MissionOrder) AssignedToCrewAt() *time.Time { return m.assignedToCrewAt }

// ExecutionStartedAt returns when execution started.
func (m *MissionOrder) ExecutionStartedAt() *time.Time { return m.executionStartedAt }

// ExecutionCompletedAt returns when execution completed.
func (m *MissionOrder) ExecutionCompletedAt() *time.Time { return m.executionCompletedAt }

// ValidatedAt returns when the crew member signed the mission off.
func (m *MissionOrder) ValidatedAt() *time.Time { return m.validatedAt }

// Approve moves the mission to Approved. Admin only, legal from any
// non-approved status. Calling it on an already approved mission is a
// no-op: the record is returned unchanged and no notification is sent.
func (m *MissionOrder) Approve(actor kernel.Actor, now time.Time) error {
	if err := m.authorizeAdmin("approve", actor); err != nil {
		return err
	}

	if m.status == StatusApproved {
		return nil
	}

	m.status = StatusApproved
	m.approvedAt = &now
	approvedBy := actor.ID()
	m.approvedBy = &approvedBy

	m.recordCrewEvent(EventMissionApproved,
		"Mission approved",
		fmt.Sprintf("Your mission on %s has been approved.", m.aircraft.Registration()))
	return nil
}

// Reject moves the mission to Rejected. Admin only, legal from any status.
// The reason is mandatory and is forwarded to the crew member.
func (m *MissionOrder) Reject(actor kernel.Actor, reason string, now time.Time) error {
	if err := m.authorizeAdmin("reject", actor); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	m.status = StatusRejected
	m.rejectedAt = &now
	rejectedBy := actor.ID()
	m.rejectedBy = &rejectedBy
	m.rejectionReason = reason

	m.recordCrewEvent(EventMissionRejected,
		"Mission rejected",
		fmt.Sprintf("Your mission on %s has been rejected: %s", m.aircraft.Registration(), reason))
	return nil
}

// ApproveClientResponse records that the paying party accepted the pricing
// and moves the mission to Approved. Admin only, legal from
// PendingClientApproval.
func (m *MissionOrder) ApproveClientResponse(actor kernel.Actor, now time.Time) error {
	if err := m.authorizeAdmin("approveClientResponse", actor); err != nil {
		return err
	}

	newStatus, err := m.status.ApproveClientResponse()
	if err != nil {
		return err
	}

	m.status = newStatus
	m.clientApprovedAt = &now
	m.approvedAt = &now
	approvedBy := actor.ID()
	m.approvedBy = &approvedBy

	m.recordCrewEvent(EventClientAccepted,
		"Client accepted your mission",
		fmt.Sprintf("The client accepted the pricing for your mission on %s.", m.aircraft.Registration()))
	return nil
}

// RejectClientResponse records that the paying party declined the pricing
// and moves the mission to ClientRejected. Admin only, legal from
// PendingClientApproval. The reason is forwarded to the crew member.
func (m *MissionOrder) RejectClientResponse(actor kernel.Actor, reason string, now time.Time) error {
	if err := m.authorizeAdmin("rejectClientResponse", actor); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	newStatus, err := m.status.RejectClientResponse()
	if err != nil {
		return err
	}

	m.status = newStatus
	m.clientRejectedAt = &now
	m.rejectionReason = reason

	m.recordCrewEvent(EventClientRejected,
		"Client declined your mission",
		fmt.Sprintf("The client declined the pricing for your mission on %s: %s",
			m.aircraft.Registration(), reason))
	return nil
}

// AssignToCrew moves the mission to PendingExecution. Admin only, legal
// from Approved. A freelancer without a contract gets a zero-hour contract
// synthesized at this point.
func (m *MissionOrder) AssignToCrew(actor kernel.Actor, now time.Time) error {
	if err := m.authorizeAdmin("assignToCrew", actor); err != nil {
		return err
	}

	newStatus, err := m.status.AssignToCrew()
	if err != nil {
		return err
	}

	if m.crew.Type() == CrewTypeFreelancer && m.contract == nil {
		contract, contractErr := NewZeroHourContract(now, defaultCurrency)
		if contractErr != nil {
			return contractErr
		}
		m.contract = contract
	}

	m.status = newStatus
	m.assignedToCrewAt = &now

	m.recordCrewEvent(EventCrewAssigned,
		"You have been assigned to a mission",
		fmt.Sprintf("You have been assigned to a mission on %s.", m.aircraft.Registration()))
	return nil
}

// StartExecution moves the mission to InProgress. Legal for the
// crew-of-record or an admin, from PendingExecution.
func (m *MissionOrder) StartExecution(actor kernel.Actor, now time.Time) error {
	if err := m.authorizeCrewOfRecordOrAdmin("startExecution", actor); err != nil {
		return err
	}

	newStatus, err := m.status.StartExecution()
	if err != nil {
		return err
	}

	m.status = newStatus
	m.executionStartedAt = &now

	m.recordAdminEvent(EventExecutionStarted,
		"Mission execution started",
		fmt.Sprintf("%s started executing the mission on %s.", m.crew.Name(), m.aircraft.Registration()))
	return nil
}

// CompleteExecution moves the mission to MissionOver and records the actual
// end date. Legal for the crew-of-record or an admin, from InProgress.
// When the actual end differs from the contracted end date the mission is
// marked as extended and a written extension reason becomes mandatory.
func (m *MissionOrder) CompleteExecution(
	actor kernel.Actor, actualEndDate time.Time, extensionReason string, now time.Time,
) error {
	if err := m.authorizeCrewOfRecordOrAdmin("completeExecution", actor); err != nil {
		return err
	}

	newStatus, err := m.status.CompleteExecution()
	if err != nil {
		return err
	}

	extended := false
	if m.contract != nil {
		actualRange, rangeErr := kernel.NewDateRange(actualEndDate, actualEndDate)
		if rangeErr != nil {
			return rangeErr
		}
		extended = !actualRange.End().Equal(m.contract.Period().End())
	}
	if extended && extensionReason == "" {
		return errs.NewValueIsRequiredError("extensionReason")
	}

	actualEnd := actualEndDate
	m.status = newStatus
	m.actualEndDate = &actualEnd
	m.wasExtended = extended
	if extended {
		m.extensionReason = extensionReason
	}
	m.executionCompletedAt = &now

	m.recordAdminEvent(EventExecutionCompleted,
		"Mission execution completed",
		fmt.Sprintf("%s completed the mission on %s.", m.crew.Name(), m.aircraft.Registration()))
	m.recordCrewEvent(EventValidationRequired,
		"Mission validation required",
		"Your mission is over. Please validate it to confirm your payment details.")
	return nil
}

// ValidationPayload carries the crew sign-off. When it requests new dates,
// validation raises a date-modification request instead of closing the
// mission.
type ValidationPayload struct {
	Comments             string
	BankDetailsConfirmed bool
	ReportedIssues       []string
	PaymentIssue         bool
	RequestedDates       *kernel.DateRange
	DateChangeReason     string
}

// ValidateMission records the crew sign-off. Legal for the crew-of-record
// or an admin, from PendingValidation or PendingDateModification. If the
// payload requests new dates the mission moves to PendingDateModification
// with a fresh request; otherwise it reaches the terminal Validated status.
// A reported payment issue produces an additional crew notification.
func (m *MissionOrder) ValidateMission(actor kernel.Actor, payload ValidationPayload, now time.Time) error {
	if err := m.authorizeCrewOfRecordOrAdmin("validate", actor); err != nil {
		return err
	}

	if err := m.status.ValidateMission(); err != nil {
		return err
	}

	var request *DateModificationRequest
	if payload.RequestedDates != nil {
		if m.contract == nil {
			return errs.NewValueIsRequiredError("contract")
		}
		var err error
		request, err = NewDateModificationRequest(
			m.contract.Period(), *payload.RequestedDates, payload.DateChangeReason, now)
		if err != nil {
			return err
		}
	}

	record, err := NewValidationRecord(
		payload.Comments,
		payload.BankDetailsConfirmed,
		payload.ReportedIssues,
		payload.PaymentIssue,
		now,
	)
	if err != nil {
		return err
	}

	m.validation = record
	if request != nil {
		m.dateModification = request
		m.status = StatusPendingDateModification
		m.recordAdminEvent(EventDateChangeRequested,
			"Date modification requested at validation",
			fmt.Sprintf("%s requested new mission dates: %s (%s)",
				m.crew.Name(), request.Requested(), request.Reason()))
	} else {
		m.status = StatusValidated
		m.validatedAt = &now
	}

	m.recordAdminEvent(EventMissionValidated,
		"Mission validated by crew",
		fmt.Sprintf("%s signed off the mission on %s.", m.crew.Name(), m.aircraft.Registration()))
	if payload.PaymentIssue {
		m.recordCrewEvent(EventPaymentIssueReported,
			"Payment issue registered",
			"The payment issue you reported has been registered and will be reviewed.")
	}
	return nil
}

// RequestDateModification creates or overwrites the single outstanding
// date-change request. Legal for the crew-of-record or an admin, from any
// status. The mission moves to PendingDateModification unless it is already
// validated, in which case the status is preserved.
func (m *MissionOrder) RequestDateModification(
	actor kernel.Actor, requested kernel.DateRange, reason string, now time.Time,
) error {
	if err := m.authorizeCrewOfRecordOrAdmin("requestDateModification", actor); err != nil {
		return err
	}
	if m.contract == nil {
		return errs.NewValueIsRequiredError("contract")
	}

	request, err := NewDateModificationRequest(m.contract.Period(), requested, reason, now)
	if err != nil {
		return err
	}

	m.dateModification = request
	if m.status != StatusValidated {
		m.status = StatusPendingDateModification
	}

	m.recordAdminEvent(EventDateChangeRequested,
		"Date modification requested",
		fmt.Sprintf("%s requested new mission dates: %s (%s)",
			m.crew.Name(), request.Requested(), request.Reason()))
	return nil
}

// ResolveDateModification decides the outstanding date-change request.
// Admin only; requires a pending request.
//
// Approving overwrites the contract dates with the requested ones and moves
// the mission to Validated. Rejecting leaves both the status and the
// contract dates untouched; only the request is marked rejected. The crew
// member is notified of the decision either way.
func (m *MissionOrder) ResolveDateModification(actor kernel.Actor, approve bool, now time.Time) error {
	if err := m.authorizeAdmin("resolveDateModification", actor); err != nil {
		return err
	}
	if !m.dateModification.IsPending() {
		return errs.NewStatusPreconditionError(
			"resolveDateModification", m.status.String(),
			"an outstanding date-modification request")
	}

	if !approve {
		m.dateModification.reject(now)
		m.recordCrewEvent(EventDateChangeRejected,
			"Date modification rejected",
			fmt.Sprintf("Your request to change the mission dates to %s was rejected.",
				m.dateModification.Requested()))
		return nil
	}

	if m.contract == nil {
		return errs.NewValueIsRequiredError("contract")
	}
	if err := m.contract.Reschedule(m.dateModification.Requested()); err != nil {
		return err
	}

	m.dateModification.approve(now)
	m.status = StatusValidated
	if m.validatedAt == nil {
		m.validatedAt = &now
	}

	m.recordCrewEvent(EventDateChangeApproved,
		"Date modification approved",
		fmt.Sprintf("Your mission dates have been changed to %s.", m.contract.Period()))
	return nil
}

// SweepToValidation advances an approved mission whose contracted end date
// has passed to PendingValidation. This is the date-based completion path,
// independent of the explicit execution path; the status precondition
// guarantees a mission already assigned to crew is never swept.
func (m *MissionOrder) SweepToValidation(now time.Time) error {
	newStatus, err := m.status.SweepToValidation()
	if err != nil {
		return err
	}
	if m.contract == nil || !m.contract.Period().EndsBefore(now) {
		return errs.NewValueIsInvalidErrorWithCause("endDate",
			errors.New("contract end date has not passed yet"))
	}

	m.status = newStatus

	m.recordCrewEvent(EventValidationRequired,
		"Mission validation required",
		"Your mission has ended. Please validate it to confirm your payment details.")
	return nil
}

// authorizeAdmin returns an AuthorizationError unless the actor is an admin.
func (m *MissionOrder) authorizeAdmin(operation string, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewAuthorizationError(operation, actor.Role().String())
	}
	return nil
}

// authorizeCrewOfRecordOrAdmin returns an AuthorizationError unless the
// actor is an admin or the crew member assigned to this mission.
func (m *MissionOrder) authorizeCrewOfRecordOrAdmin(operation string, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsCrew() && actor.ID().IsEqual(m.crew.ID()) {
		return nil
	}
	return errs.NewAuthorizationError(operation, actor.Role().String())
}

// defaultCurrency is used for synthesized zero-hour contracts, which carry
// no negotiated pay terms.
const defaultCurrency = "EUR"
