package mission

import (
	"errors"
	"time"
)

// ErrOwnerApprovalIsNotConstructed is returned when validating a zero-value
// OwnerApproval.
var ErrOwnerApprovalIsNotConstructed = errors.New(
	"OwnerApproval must be created via NewOwnerApproval constructor")

// OwnerApproval is the aircraft owner's sign-off on an extra-day mission.
// Only meaningful for missions of type extra_day; the aggregate rejects it
// on any other type.
type OwnerApproval struct {
	ownerName  string
	approved   bool
	approvedAt *time.Time

	isConstructed bool
}

// NewOwnerApproval creates an owner-approval record.
func NewOwnerApproval(ownerName string, approved bool, approvedAt *time.Time) (*OwnerApproval, error) {
	if err := requireText("ownerName", ownerName); err != nil {
		return nil, err
	}

	return &OwnerApproval{
		ownerName:     ownerName,
		approved:      approved,
		approvedAt:    approvedAt,
		isConstructed: true,
	}, nil
}

// OwnerName returns the name of the approving owner.
func (o *OwnerApproval) OwnerName() string { return o.ownerName }

// Approved reports whether the owner signed the extra day off.
func (o *OwnerApproval) Approved() bool { return o.approved }

// ApprovedAt returns when the owner decided. Nil while undecided.
func (o *OwnerApproval) ApprovedAt() *time.Time { return o.approvedAt }

// Validate checks that the record was built through NewOwnerApproval.
func (o *OwnerApproval) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOwnerApprovalIsNotConstructed
	}
	return nil
}
