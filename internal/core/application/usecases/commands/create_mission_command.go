package commands

import (
	"errors"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"
	"missions/internal/pkg/guard"
)

var ErrCreateMissionCommandIsNotConstructed = errors.New(
	"CreateMissionCommand must be created via NewCreateMissionCommand constructor",
)

// CreateMissionCommand represents a request to create a new mission order.
// Carries the already validated domain snapshots assembled by the transport
// layer: crew, aircraft, flights and the optional contract, billing data and
// type-specific sub-records.
//
// Example:
//
//	missionID := kernel.NewUUID()
//	cmd, err := NewCreateMissionCommand(missionID, mission.TypeFreelance, actor,
//	    crew, aircraft, flights, contract, nil, false, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid mission data: %w", err)
//	}
//
//	handler := NewCreateMissionCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create mission: %w", err)
//	}
type CreateMissionCommand struct { //nolint:recvcheck //using for validation
	missionID   kernel.UUID
	missionType mission.Type
	actor       kernel.Actor

	crew     mission.CrewMember
	aircraft mission.Aircraft
	flights  []mission.FlightLeg
	contract *mission.Contract

	emailData      *mission.EmailData
	financeReview  bool
	ownerApproval  *mission.OwnerApproval
	serviceInvoice *mission.ServiceInvoice

	guard guard.ConstructorGuard
}

// NewCreateMissionCommand creates a command to register a new mission order.
// Validates the identifier, the mission type, the actor and the crew and
// aircraft snapshots. Optional parts are validated by the aggregate.
func NewCreateMissionCommand(
	missionID kernel.UUID,
	missionType mission.Type,
	actor kernel.Actor,
	crew mission.CrewMember,
	aircraft mission.Aircraft,
	flights []mission.FlightLeg,
	contract *mission.Contract,
	emailData *mission.EmailData,
	financeReview bool,
	ownerApproval *mission.OwnerApproval,
	serviceInvoice *mission.ServiceInvoice,
) (CreateMissionCommand, error) {
	missionCommand := CreateMissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		missionCommand.setMissionID(missionID),
		missionCommand.setMissionType(missionType),
		missionCommand.setActor(actor),
		missionCommand.setCrew(crew),
		missionCommand.setAircraft(aircraft),
	); err != nil {
		return CreateMissionCommand{}, err
	}

	missionCommand.flights = flights
	missionCommand.contract = contract
	missionCommand.emailData = emailData
	missionCommand.financeReview = financeReview
	missionCommand.ownerApproval = ownerApproval
	missionCommand.serviceInvoice = serviceInvoice

	return missionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMissionCommandIsNotConstructed if validation fails.
func (c CreateMissionCommand) Validate() error {
	return c.guard.Validate(ErrCreateMissionCommandIsNotConstructed)
}

// MissionID returns the unique identifier for the mission.
func (c CreateMissionCommand) MissionID() kernel.UUID {
	return c.missionID
}

// MissionType returns the kind of mission being created.
func (c CreateMissionCommand) MissionType() mission.Type {
	return c.missionType
}

// Actor returns the authenticated caller creating the mission.
func (c CreateMissionCommand) Actor() kernel.Actor {
	return c.actor
}

// Crew returns the crew member snapshot.
func (c CreateMissionCommand) Crew() mission.CrewMember {
	return c.crew
}

// Aircraft returns the aircraft snapshot.
func (c CreateMissionCommand) Aircraft() mission.Aircraft {
	return c.aircraft
}

// Flights returns the flight schedule. May be empty.
func (c CreateMissionCommand) Flights() []mission.FlightLeg {
	return c.flights
}

// Contract returns the negotiated contract, or nil.
func (c CreateMissionCommand) Contract() *mission.Contract {
	return c.contract
}

// EmailData returns the billing snapshot for the paying party, or nil.
func (c CreateMissionCommand) EmailData() *mission.EmailData {
	return c.emailData
}

// FinanceReview reports whether the creator asked for a finance review.
func (c CreateMissionCommand) FinanceReview() bool {
	return c.financeReview
}

// OwnerApproval returns the owner sign-off of an extra-day mission, or nil.
func (c CreateMissionCommand) OwnerApproval() *mission.OwnerApproval {
	return c.ownerApproval
}

// ServiceInvoice returns the invoice of a service mission, or nil.
func (c CreateMissionCommand) ServiceInvoice() *mission.ServiceInvoice {
	return c.serviceInvoice
}

func (c *CreateMissionCommand) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	c.missionID = missionID
	return nil
}

func (c *CreateMissionCommand) setMissionType(missionType mission.Type) error {
	if err := missionType.Validate(); err != nil {
		return err
	}

	c.missionType = missionType
	return nil
}

func (c *CreateMissionCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateMissionCommand) setCrew(crew mission.CrewMember) error {
	if err := crew.Validate(); err != nil {
		return err
	}

	c.crew = crew
	return nil
}

func (c *CreateMissionCommand) setAircraft(aircraft mission.Aircraft) error {
	if err := aircraft.Validate(); err != nil {
		return err
	}

	c.aircraft = aircraft
	return nil
}
