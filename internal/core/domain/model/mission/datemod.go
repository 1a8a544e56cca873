package mission

import (
	"errors"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/errs"
)

// DateModificationStatus tracks the lifecycle of a date-change request.
type DateModificationStatus int

const (
	// DateModificationUnknown represents an invalid or undefined request status.
	DateModificationUnknown DateModificationStatus = iota

	// DateModificationPending means the request awaits an admin decision.
	DateModificationPending

	// DateModificationApproved means the requested dates overwrote the contract.
	DateModificationApproved

	// DateModificationRejected means an admin declined the request; the
	// contract dates stay untouched.
	DateModificationRejected
)

// getDateModificationStatusStrings returns the wire representation of every
// request status.
func getDateModificationStatusStrings() map[DateModificationStatus]string {
	return map[DateModificationStatus]string{
		DateModificationUnknown:  "unknown",
		DateModificationPending:  "pending",
		DateModificationApproved: "approved",
		DateModificationRejected: "rejected",
	}
}

// DateModificationStatusFromString parses a request status from its wire
// representation.
func DateModificationStatusFromString(s string) (DateModificationStatus, error) {
	for status, str := range getDateModificationStatusStrings() {
		if status != DateModificationUnknown && str == s {
			return status, nil
		}
	}
	return DateModificationUnknown, errs.NewValueIsInvalidError("dateModificationStatus")
}

// String returns the wire name of the request status.
func (s DateModificationStatus) String() string {
	if str, ok := getDateModificationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined request states.
func (s DateModificationStatus) Validate() error {
	if s != DateModificationPending && s != DateModificationApproved && s != DateModificationRejected {
		return errs.NewValueIsInvalidError("dateModificationStatus")
	}
	return nil
}

// ErrDateModificationIsNotConstructed is returned when validating a
// zero-value DateModificationRequest.
var ErrDateModificationIsNotConstructed = errors.New(
	"DateModificationRequest must be created via NewDateModificationRequest constructor")

// DateModificationRequest is the single outstanding request to change a
// mission's contract dates. A mission holds at most one non-resolved
// request at any time: a later request overwrites the current one rather
// than appending.
type DateModificationRequest struct {
	original    kernel.DateRange
	requested   kernel.DateRange
	reason      string
	status      DateModificationStatus
	requestedAt time.Time
	resolvedAt  *time.Time

	isConstructed bool
}

// NewDateModificationRequest creates a pending date-change request.
// The reason is mandatory: a date change always needs a written motive.
func NewDateModificationRequest(
	original, requested kernel.DateRange, reason string, requestedAt time.Time,
) (*DateModificationRequest, error) {
	if err := errors.Join(
		original.Validate(),
		requested.Validate(),
		requireText("reason", reason),
	); err != nil {
		return nil, err
	}

	return &DateModificationRequest{
		original:      original,
		requested:     requested,
		reason:        reason,
		status:        DateModificationPending,
		requestedAt:   requestedAt,
		isConstructed: true,
	}, nil
}

// RestoreDateModificationRequest rebuilds a request from persistence,
// including resolved ones.
func RestoreDateModificationRequest(
	original, requested kernel.DateRange,
	reason string,
	status DateModificationStatus,
	requestedAt time.Time,
	resolvedAt *time.Time,
) (*DateModificationRequest, error) {
	if err := errors.Join(
		original.Validate(),
		requested.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &DateModificationRequest{
		original:      original,
		requested:     requested,
		reason:        reason,
		status:        status,
		requestedAt:   requestedAt,
		resolvedAt:    resolvedAt,
		isConstructed: true,
	}, nil
}

// Original returns the contract dates at the time of the request.
func (r *DateModificationRequest) Original() kernel.DateRange { return r.original }

// Requested returns the dates the requester wants.
func (r *DateModificationRequest) Requested() kernel.DateRange { return r.requested }

// Reason returns the written motive for the change.
func (r *DateModificationRequest) Reason() string { return r.reason }

// Status returns the request's lifecycle state.
func (r *DateModificationRequest) Status() DateModificationStatus { return r.status }

// RequestedAt returns when the request was raised.
func (r *DateModificationRequest) RequestedAt() time.Time { return r.requestedAt }

// ResolvedAt returns when the request was decided. Nil while pending.
func (r *DateModificationRequest) ResolvedAt() *time.Time { return r.resolvedAt }

// IsPending reports whether the request still awaits a decision.
func (r *DateModificationRequest) IsPending() bool {
	return r != nil && r.status == DateModificationPending
}

// approve marks the request as approved. Called by the aggregate only.
func (r *DateModificationRequest) approve(resolvedAt time.Time) {
	r.status = DateModificationApproved
	r.resolvedAt = &resolvedAt
}

// reject marks the request as rejected. Called by the aggregate only.
func (r *DateModificationRequest) reject(resolvedAt time.Time) {
	r.status = DateModificationRejected
	r.resolvedAt = &resolvedAt
}

// Validate checks that the request was built through a constructor.
func (r *DateModificationRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDateModificationIsNotConstructed
	}
	return nil
}
