package mission

import (
	"errors"
	"time"
)

// ErrValidationRecordIsNotConstructed is returned when validating a
// zero-value ValidationRecord.
var ErrValidationRecordIsNotConstructed = errors.New(
	"ValidationRecord must be created via NewValidationRecord constructor")

// ValidationRecord captures the crew member's post-mission sign-off.
// It is set once, at validation time, and never modified afterwards.
type ValidationRecord struct {
	comments             string
	bankDetailsConfirmed bool
	reportedIssues       []string
	paymentIssue         bool
	validatedAt          time.Time

	isConstructed bool
}

// NewValidationRecord creates the crew sign-off record.
// A reported payment issue triggers an additional crew notification so the
// crew member has written confirmation that the issue was registered.
func NewValidationRecord(
	comments string,
	bankDetailsConfirmed bool,
	reportedIssues []string,
	paymentIssue bool,
	validatedAt time.Time,
) (*ValidationRecord, error) {
	issues := make([]string, len(reportedIssues))
	copy(issues, reportedIssues)

	return &ValidationRecord{
		comments:             comments,
		bankDetailsConfirmed: bankDetailsConfirmed,
		reportedIssues:       issues,
		paymentIssue:         paymentIssue,
		validatedAt:          validatedAt,
		isConstructed:        true,
	}, nil
}

// Comments returns the crew member's free-text sign-off comments.
func (v *ValidationRecord) Comments() string { return v.comments }

// BankDetailsConfirmed reports whether the crew member confirmed their
// bank details for payment.
func (v *ValidationRecord) BankDetailsConfirmed() bool { return v.bankDetailsConfirmed }

// ReportedIssues returns the issues the crew member reported.
func (v *ValidationRecord) ReportedIssues() []string {
	issues := make([]string, len(v.reportedIssues))
	copy(issues, v.reportedIssues)
	return issues
}

// PaymentIssue reports whether the crew member flagged a payment problem.
func (v *ValidationRecord) PaymentIssue() bool { return v.paymentIssue }

// ValidatedAt returns when the sign-off was recorded.
func (v *ValidationRecord) ValidatedAt() time.Time { return v.validatedAt }

// Validate checks that the record was built through NewValidationRecord.
func (v *ValidationRecord) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrValidationRecordIsNotConstructed
	}
	return nil
}
