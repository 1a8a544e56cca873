package kernel

import (
	"missions/internal/pkg/errs"
)

// Role identifies the authorization level of an acting party.
// It is a value object validated against the closed set of roles the
// mission workflow recognizes.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin is an operations administrator. Admins drive the approval,
	// assignment and resolution sides of the mission workflow.
	RoleAdmin

	// RoleCrew is a crew member. Crew members drive the execution and
	// validation sides of the workflow for missions they are assigned to.
	RoleCrew
)

// getRoleStrings returns the wire/string representation of every role.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleAdmin:   "admin",
		RoleCrew:    "crew",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns an error for anything outside the recognized set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the role is one of the recognized values.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleCrew {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor identifies the authenticated party invoking a mission operation.
// Token verification happens upstream; the domain only consumes the
// resulting identity and role.
//
// Example:
//
//	actor, err := kernel.NewActor(userID, kernel.RoleAdmin)
//	if err != nil {
//	    // invalid identity or role
//	}
type Actor struct {
	id   UUID
	role Role

	isConstructed bool
}

// NewActor creates a validated actor from an identity and a role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// IsCrew reports whether the actor holds the crew role.
func (a Actor) IsCrew() bool {
	return a.role == RoleCrew
}

// Validate checks that the actor was built through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}
