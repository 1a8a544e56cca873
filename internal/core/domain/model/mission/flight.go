package mission

import (
	"errors"
	"time"

	"missions/internal/pkg/errs"
)

// ErrFlightLegIsNotConstructed is returned when validating a zero-value FlightLeg.
var ErrFlightLegIsNotConstructed = errors.New(
	"FlightLeg must be created via NewFlightLeg constructor")

// FlightLeg is one leg of a mission's flight schedule. The schedule is an
// ordered list and may be empty for ground-duty missions.
type FlightLeg struct {
	departure    string
	arrival      string
	date         time.Time
	flightNumber string

	isConstructed bool
}

// NewFlightLeg creates a validated flight leg. Departure and arrival are
// airport codes or free-text names; the flight number may be empty.
func NewFlightLeg(departure, arrival string, date time.Time, flightNumber string) (FlightLeg, error) {
	if err := errors.Join(
		requireText("departure", departure),
		requireText("arrival", arrival),
	); err != nil {
		return FlightLeg{}, err
	}
	if date.IsZero() {
		return FlightLeg{}, errs.NewValueIsRequiredError("flightDate")
	}

	return FlightLeg{
		departure:     departure,
		arrival:       arrival,
		date:          date,
		flightNumber:  flightNumber,
		isConstructed: true,
	}, nil
}

// Departure returns the departure airport.
func (f FlightLeg) Departure() string {
	return f.departure
}

// Arrival returns the arrival airport.
func (f FlightLeg) Arrival() string {
	return f.arrival
}

// Date returns the date the leg is flown.
func (f FlightLeg) Date() time.Time {
	return f.date
}

// FlightNumber returns the commercial flight number. May be empty.
func (f FlightLeg) FlightNumber() string {
	return f.flightNumber
}

// Validate checks that the leg was built through NewFlightLeg.
func (f FlightLeg) Validate() error {
	if !f.isConstructed {
		return ErrFlightLegIsNotConstructed
	}
	return nil
}
