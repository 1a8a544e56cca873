package mission

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/errs"
)

// CrewType distinguishes employed crew members from contractors.
type CrewType int

const (
	// CrewTypeUnknown represents an invalid or undefined crew type.
	CrewTypeUnknown CrewType = iota

	// CrewTypeInternal is an employed crew member.
	CrewTypeInternal

	// CrewTypeFreelancer is an external contractor. Freelancers without a
	// contract get a zero-hour contract synthesized at crew assignment.
	CrewTypeFreelancer
)

// getCrewTypeStrings returns the wire representation of every crew type.
func getCrewTypeStrings() map[CrewType]string {
	return map[CrewType]string{
		CrewTypeUnknown:    "unknown",
		CrewTypeInternal:   "internal",
		CrewTypeFreelancer: "freelancer",
	}
}

// CrewTypeFromString parses a crew type from its wire representation.
func CrewTypeFromString(s string) (CrewType, error) {
	for t, str := range getCrewTypeStrings() {
		if t != CrewTypeUnknown && str == s {
			return t, nil
		}
	}
	return CrewTypeUnknown, errs.NewValueIsInvalidError("crewType")
}

// String returns the wire name of the crew type.
func (t CrewType) String() string {
	if str, ok := getCrewTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the crew type is internal or freelancer.
func (t CrewType) Validate() error {
	if t != CrewTypeInternal && t != CrewTypeFreelancer {
		return errs.NewValueIsInvalidError("crewType")
	}
	return nil
}

// ErrCrewMemberIsNotConstructed is returned when validating a zero-value CrewMember.
var ErrCrewMemberIsNotConstructed = errors.New(
	"CrewMember must be created via NewCrewMember constructor")

// CrewMember is the snapshot of the crew member staffing a mission.
// It is copied into the mission order at creation time, not a live
// reference: later changes to the crew roster do not affect existing
// missions.
type CrewMember struct {
	id       kernel.UUID
	name     string
	position string
	crewType CrewType
	email    string
	phone    string

	isConstructed bool
}

// NewCrewMember creates a validated crew member snapshot.
// The position must match a rate-table position for automatic pricing to
// resolve, but free-text positions are accepted: they simply price manually.
func NewCrewMember(
	id kernel.UUID, name, position string, crewType CrewType, email, phone string,
) (CrewMember, error) {
	if err := errors.Join(
		id.Validate(),
		crewType.Validate(),
		requireText("crewName", name),
		requireText("crewPosition", position),
	); err != nil {
		return CrewMember{}, err
	}

	return CrewMember{
		id:            id,
		name:          name,
		position:      position,
		crewType:      crewType,
		email:         email,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// ID returns the crew member's identity.
func (c CrewMember) ID() kernel.UUID {
	return c.id
}

// Name returns the crew member's full name.
func (c CrewMember) Name() string {
	return c.name
}

// Position returns the crew member's position, e.g. "Captain".
func (c CrewMember) Position() string {
	return c.position
}

// Type returns whether the crew member is internal or a freelancer.
func (c CrewMember) Type() CrewType {
	return c.crewType
}

// Email returns the crew member's contact email. May be empty.
func (c CrewMember) Email() string {
	return c.email
}

// Phone returns the crew member's contact phone. May be empty.
func (c CrewMember) Phone() string {
	return c.phone
}

// Validate checks that the snapshot was built through NewCrewMember.
func (c CrewMember) Validate() error {
	if !c.isConstructed {
		return ErrCrewMemberIsNotConstructed
	}
	return nil
}

// requireText returns a ValueIsRequiredError when s is empty.
func requireText(paramName, s string) error {
	if s == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
