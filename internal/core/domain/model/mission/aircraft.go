package mission

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
)

// ErrAircraftIsNotConstructed is returned when validating a zero-value Aircraft.
var ErrAircraftIsNotConstructed = errors.New(
	"Aircraft must be created via NewAircraft constructor")

// Aircraft is the snapshot of the aircraft a mission is staffed for,
// copied into the mission order at creation time.
type Aircraft struct {
	id           kernel.UUID
	registration string
	aircraftType string

	isConstructed bool
}

// NewAircraft creates a validated aircraft snapshot.
// The registration is used by automatic pricing to resolve the aircraft
// category in the rate table.
func NewAircraft(id kernel.UUID, registration, aircraftType string) (Aircraft, error) {
	if err := errors.Join(
		id.Validate(),
		requireText("registration", registration),
	); err != nil {
		return Aircraft{}, err
	}

	return Aircraft{
		id:            id,
		registration:  registration,
		aircraftType:  aircraftType,
		isConstructed: true,
	}, nil
}

// ID returns the aircraft's identity.
func (a Aircraft) ID() kernel.UUID {
	return a.id
}

// Registration returns the tail number, e.g. "F-HJCB".
func (a Aircraft) Registration() string {
	return a.registration
}

// AircraftType returns the aircraft model designation. May be empty.
func (a Aircraft) AircraftType() string {
	return a.aircraftType
}

// Validate checks that the snapshot was built through NewAircraft.
func (a Aircraft) Validate() error {
	if !a.isConstructed {
		return ErrAircraftIsNotConstructed
	}
	return nil
}
