package mission

import (
	"missions/internal/pkg/errs"
)

// Type discriminates the three kinds of mission orders. The type decides
// which optional sub-records are meaningful: service missions carry a
// service invoice, extra-day missions carry an owner-approval record.
type Type int

const (
	// TypeUnknown represents an invalid or undefined mission type.
	TypeUnknown Type = iota

	// TypeExtraDay is an additional working day on an existing engagement,
	// subject to approval by the aircraft owner.
	TypeExtraDay

	// TypeFreelance is a temporary staffing engagement of an external
	// crew member.
	TypeFreelance

	// TypeService is a billable service engagement that produces an
	// itemized service invoice.
	TypeService
)

// getTypeStrings returns the wire representation of every mission type.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:   "unknown",
		TypeExtraDay:  "extra_day",
		TypeFreelance: "freelance",
		TypeService:   "service",
	}
}

// TypeFromString parses a mission type from its wire representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidError("missionType")
}

// String returns the wire name of the mission type, e.g. "extra_day".
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the type is one of the defined mission kinds.
func (t Type) Validate() error {
	if t != TypeExtraDay && t != TypeFreelance && t != TypeService {
		return errs.NewValueIsInvalidError("missionType")
	}
	return nil
}
