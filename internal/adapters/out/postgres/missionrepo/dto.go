// Package missionrepo provides data transfer objects and mapping functions for
// mission persistence. This package implements the repository pattern for the
// mission order aggregate, handling the conversion between domain entities and
// database representations.
package missionrepo

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MissionDTO represents the database structure for persisting mission order
// aggregates. The aggregate is flattened into a single row: crew and aircraft
// snapshots are embedded, the flight schedule and invoice lines are stored as
// JSON documents, and the optional sub-records carry a presence flag.
type MissionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version     int       `gorm:"not null"`
	MissionType string    `gorm:"index"`
	Status      string    `gorm:"index"`

	Crew     CrewDTO       `gorm:"embedded;embeddedPrefix:crew_"`
	Aircraft AircraftDTO   `gorm:"embedded;embeddedPrefix:aircraft_"`
	Flights  FlightLegsDTO `gorm:"type:jsonb"`

	HasContract      bool
	ContractStart    *time.Time
	ContractEnd      *time.Time
	SalaryAmount     float64
	SalaryMode       string
	SalaryCurrency   string
	SalaryLocked     bool
	SalaryComment    string
	PerDiemAmount    float64
	PerDiemEnabled   bool
	PerDiemLocked    bool
	PerDiemComment   string
	ContractNotes    string
	ContractZeroHour bool

	HasEmailData   bool
	EmailRecipient string
	EmailSubject   string
	EmailBody      string
	EmailFees      *FeesDTO `gorm:"type:jsonb"`

	HasValidation        bool
	ValidationComments   string
	BankDetailsConfirmed bool
	ReportedIssues       pq.StringArray `gorm:"type:text[]"`
	PaymentIssue         bool
	ValidationRecordedAt *time.Time

	HasDateModification bool
	DateModOrigStart    *time.Time
	DateModOrigEnd      *time.Time
	DateModReqStart     *time.Time
	DateModReqEnd       *time.Time
	DateModReason       string
	DateModStatus       string
	DateModRequestedAt  *time.Time
	DateModResolvedAt   *time.Time

	HasOwnerApproval bool
	OwnerName        string
	OwnerApproved    bool
	OwnerApprovedAt  *time.Time

	HasServiceInvoice bool
	InvoiceLines      InvoiceLinesDTO `gorm:"type:jsonb"`
	InvoiceTaxRate    float64

	ActualEndDate   *time.Time
	WasExtended     bool
	ExtensionReason string

	CreatedAt time.Time
	CreatedBy uuid.UUID `gorm:"type:uuid"`

	ApprovedAt           *time.Time
	ApprovedBy           *uuid.UUID `gorm:"type:uuid"`
	RejectedAt           *time.Time
	RejectedBy           *uuid.UUID `gorm:"type:uuid"`
	RejectionReason      string
	ClientApprovedAt     *time.Time
	ClientRejectedAt     *time.Time
	AssignedToCrewAt     *time.Time
	ExecutionStartedAt   *time.Time
	ExecutionCompletedAt *time.Time
	ValidatedAt          *time.Time
}

// TableName specifies the database table name for mission entities.
// Overrides GORM's default naming convention to use "missions".
func (MissionDTO) TableName() string {
	return "missions"
}

// CrewDTO represents the embedded crew member snapshot within the mission table.
type CrewDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Position string
	Type     string
	Email    string
	Phone    string
}

// AircraftDTO represents the embedded aircraft snapshot within the mission table.
type AircraftDTO struct {
	ID           uuid.UUID `gorm:"type:uuid"`
	Registration string
	Type         string
}

// FlightLegDTO is the JSON shape of one flight leg inside the flights column.
type FlightLegDTO struct {
	Departure    string    `json:"departure"`
	Arrival      string    `json:"arrival"`
	Date         time.Time `json:"date"`
	FlightNumber string    `json:"flightNumber"`
}

// FlightLegsDTO stores the flight schedule as a single JSON document.
type FlightLegsDTO []FlightLegDTO

// Value implements driver.Valuer, serializing the schedule to JSON.
func (f FlightLegsDTO) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner, deserializing the schedule from JSON.
func (f *FlightLegsDTO) Scan(value any) error {
	return scanJSON(value, f)
}

// FeesDTO is the JSON shape of the billing fee breakdown shown to the paying
// party.
type FeesDTO struct {
	DailySalary     float64 `json:"dailySalary"`
	TotalSalary     float64 `json:"totalSalary"`
	DailyPerDiem    float64 `json:"dailyPerDiem"`
	TotalPerDiem    float64 `json:"totalPerDiem"`
	TotalCost       float64 `json:"totalCost"`
	MarginAmount    float64 `json:"marginAmount"`
	TotalWithMargin float64 `json:"totalWithMargin"`
}

// Value implements driver.Valuer, serializing the fees to JSON.
func (f FeesDTO) Value() (driver.Value, error) {
	return json.Marshal(f)
}

// Scan implements sql.Scanner, deserializing the fees from JSON.
func (f *FeesDTO) Scan(value any) error {
	return scanJSON(value, f)
}

// InvoiceLineDTO is the JSON shape of one invoice line inside the
// invoice_lines column.
type InvoiceLineDTO struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// InvoiceLinesDTO stores the service invoice lines as a single JSON document.
type InvoiceLinesDTO []InvoiceLineDTO

// Value implements driver.Valuer, serializing the lines to JSON.
func (l InvoiceLinesDTO) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner, deserializing the lines from JSON.
func (l *InvoiceLinesDTO) Scan(value any) error {
	return scanJSON(value, l)
}

// scanJSON decodes a jsonb column into dest, accepting both the []byte and
// string forms drivers produce. A NULL column leaves dest untouched.
func scanJSON(value any, dest any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// fromDomain converts a mission order aggregate to its database representation.
func fromDomain(aggregate *mission.MissionOrder) MissionDTO {
	dto := MissionDTO{
		ID:          aggregate.ID().Bytes(),
		Version:     aggregate.Version(),
		MissionType: aggregate.MissionType().String(),
		Status:      aggregate.Status().String(),
		Crew: CrewDTO{
			ID:       aggregate.Crew().ID().Bytes(),
			Name:     aggregate.Crew().Name(),
			Position: aggregate.Crew().Position(),
			Type:     aggregate.Crew().Type().String(),
			Email:    aggregate.Crew().Email(),
			Phone:    aggregate.Crew().Phone(),
		},
		Aircraft: AircraftDTO{
			ID:           aggregate.Aircraft().ID().Bytes(),
			Registration: aggregate.Aircraft().Registration(),
			Type:         aggregate.Aircraft().AircraftType(),
		},
		ActualEndDate:        aggregate.ActualEndDate(),
		WasExtended:          aggregate.WasExtended(),
		ExtensionReason:      aggregate.ExtensionReason(),
		CreatedAt:            aggregate.CreatedAt(),
		CreatedBy:            aggregate.CreatedBy().Bytes(),
		ApprovedAt:           aggregate.ApprovedAt(),
		ApprovedBy:           uuidPtr(aggregate.ApprovedBy()),
		RejectedAt:           aggregate.RejectedAt(),
		RejectedBy:           uuidPtr(aggregate.RejectedBy()),
		RejectionReason:      aggregate.RejectionReason(),
		ClientApprovedAt:     aggregate.ClientApprovedAt(),
		ClientRejectedAt:     aggregate.ClientRejectedAt(),
		AssignedToCrewAt:     aggregate.AssignedToCrewAt(),
		ExecutionStartedAt:   aggregate.ExecutionStartedAt(),
		ExecutionCompletedAt: aggregate.ExecutionCompletedAt(),
		ValidatedAt:          aggregate.ValidatedAt(),
	}

	for _, leg := range aggregate.Flights() {
		dto.Flights = append(dto.Flights, FlightLegDTO{
			Departure:    leg.Departure(),
			Arrival:      leg.Arrival(),
			Date:         leg.Date(),
			FlightNumber: leg.FlightNumber(),
		})
	}

	if contract := aggregate.Contract(); contract != nil {
		start := contract.Period().Start()
		end := contract.Period().End()
		dto.HasContract = true
		dto.ContractStart = &start
		dto.ContractEnd = &end
		dto.SalaryAmount = contract.Salary().Amount()
		dto.SalaryMode = contract.Salary().Mode().String()
		dto.SalaryCurrency = contract.Salary().Currency()
		dto.SalaryLocked = contract.Salary().Locked()
		dto.SalaryComment = contract.Salary().Comment()
		dto.PerDiemAmount = contract.PerDiem().Amount()
		dto.PerDiemEnabled = contract.PerDiem().Enabled()
		dto.PerDiemLocked = contract.PerDiem().Locked()
		dto.PerDiemComment = contract.PerDiem().Comment()
		dto.ContractNotes = contract.Notes()
		dto.ContractZeroHour = contract.IsZeroHour()
	}

	if emailData := aggregate.EmailData(); emailData != nil {
		dto.HasEmailData = true
		dto.EmailRecipient = emailData.Recipient()
		dto.EmailSubject = emailData.Subject()
		dto.EmailBody = emailData.Body()
		if fees := emailData.Fees(); fees != nil {
			dto.EmailFees = &FeesDTO{
				DailySalary:     fees.DailySalary,
				TotalSalary:     fees.TotalSalary,
				DailyPerDiem:    fees.DailyPerDiem,
				TotalPerDiem:    fees.TotalPerDiem,
				TotalCost:       fees.TotalCost,
				MarginAmount:    fees.MarginAmount,
				TotalWithMargin: fees.TotalWithMargin,
			}
		}
	}

	if record := aggregate.ValidationRecord(); record != nil {
		recordedAt := record.ValidatedAt()
		dto.HasValidation = true
		dto.ValidationComments = record.Comments()
		dto.BankDetailsConfirmed = record.BankDetailsConfirmed()
		dto.ReportedIssues = record.ReportedIssues()
		dto.PaymentIssue = record.PaymentIssue()
		dto.ValidationRecordedAt = &recordedAt
	}

	if request := aggregate.DateModification(); request != nil {
		origStart := request.Original().Start()
		origEnd := request.Original().End()
		reqStart := request.Requested().Start()
		reqEnd := request.Requested().End()
		requestedAt := request.RequestedAt()
		dto.HasDateModification = true
		dto.DateModOrigStart = &origStart
		dto.DateModOrigEnd = &origEnd
		dto.DateModReqStart = &reqStart
		dto.DateModReqEnd = &reqEnd
		dto.DateModReason = request.Reason()
		dto.DateModStatus = request.Status().String()
		dto.DateModRequestedAt = &requestedAt
		dto.DateModResolvedAt = request.ResolvedAt()
	}

	if approval := aggregate.OwnerApproval(); approval != nil {
		dto.HasOwnerApproval = true
		dto.OwnerName = approval.OwnerName()
		dto.OwnerApproved = approval.Approved()
		dto.OwnerApprovedAt = approval.ApprovedAt()
	}

	if invoice := aggregate.ServiceInvoice(); invoice != nil {
		dto.HasServiceInvoice = true
		dto.InvoiceTaxRate = invoice.TaxRate()
		for _, line := range invoice.Lines() {
			dto.InvoiceLines = append(dto.InvoiceLines, InvoiceLineDTO{
				Description: line.Description(),
				Quantity:    line.Quantity(),
				UnitPrice:   line.UnitPrice(),
			})
		}
	}

	return dto
}

// toDomain converts a database DTO to a mission order aggregate.
// Reconstructs the complete aggregate including all optional sub-records
// using RestoreMissionOrder.
func toDomain(dto MissionDTO) (*mission.MissionOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	missionType, err := mission.TypeFromString(dto.MissionType)
	if err != nil {
		return nil, err
	}

	status, err := mission.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	crew, err := crewFromDTO(dto.Crew)
	if err != nil {
		return nil, err
	}

	aircraftID, err := kernel.UUIDFromBytes(dto.Aircraft.ID[:])
	if err != nil {
		return nil, err
	}
	aircraft, err := mission.NewAircraft(aircraftID, dto.Aircraft.Registration, dto.Aircraft.Type)
	if err != nil {
		return nil, err
	}

	flights := make([]mission.FlightLeg, 0, len(dto.Flights))
	for _, legDTO := range dto.Flights {
		leg, legErr := mission.NewFlightLeg(
			legDTO.Departure, legDTO.Arrival, legDTO.Date, legDTO.FlightNumber)
		if legErr != nil {
			return nil, legErr
		}
		flights = append(flights, leg)
	}

	contract, err := contractFromDTO(dto)
	if err != nil {
		return nil, err
	}

	emailData, err := emailDataFromDTO(dto)
	if err != nil {
		return nil, err
	}

	validation, err := validationFromDTO(dto)
	if err != nil {
		return nil, err
	}

	dateModification, err := dateModificationFromDTO(dto)
	if err != nil {
		return nil, err
	}

	var ownerApproval *mission.OwnerApproval
	if dto.HasOwnerApproval {
		ownerApproval, err = mission.NewOwnerApproval(dto.OwnerName, dto.OwnerApproved, dto.OwnerApprovedAt)
		if err != nil {
			return nil, err
		}
	}

	serviceInvoice, err := serviceInvoiceFromDTO(dto)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	approvedBy, err := kernelUUIDPtr(dto.ApprovedBy)
	if err != nil {
		return nil, err
	}
	rejectedBy, err := kernelUUIDPtr(dto.RejectedBy)
	if err != nil {
		return nil, err
	}

	return mission.RestoreMissionOrder(mission.RestoreMissionOrderParams{
		ID:                   id,
		Version:              dto.Version,
		MissionType:          missionType,
		Status:               status,
		Crew:                 crew,
		Aircraft:             aircraft,
		Flights:              flights,
		Contract:             contract,
		EmailData:            emailData,
		Validation:           validation,
		DateModification:     dateModification,
		OwnerApproval:        ownerApproval,
		ServiceInvoice:       serviceInvoice,
		ActualEndDate:        dto.ActualEndDate,
		WasExtended:          dto.WasExtended,
		ExtensionReason:      dto.ExtensionReason,
		CreatedAt:            dto.CreatedAt,
		CreatedBy:            createdBy,
		ApprovedAt:           dto.ApprovedAt,
		ApprovedBy:           approvedBy,
		RejectedAt:           dto.RejectedAt,
		RejectedBy:           rejectedBy,
		RejectionReason:      dto.RejectionReason,
		ClientApprovedAt:     dto.ClientApprovedAt,
		ClientRejectedAt:     dto.ClientRejectedAt,
		AssignedToCrewAt:     dto.AssignedToCrewAt,
		ExecutionStartedAt:   dto.ExecutionStartedAt,
		ExecutionCompletedAt: dto.ExecutionCompletedAt,
		ValidatedAt:          dto.ValidatedAt,
	})
}

func crewFromDTO(dto CrewDTO) (mission.CrewMember, error) {
	crewID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return mission.CrewMember{}, err
	}

	crewType, err := mission.CrewTypeFromString(dto.Type)
	if err != nil {
		return mission.CrewMember{}, err
	}

	return mission.NewCrewMember(crewID, dto.Name, dto.Position, crewType, dto.Email, dto.Phone)
}

func contractFromDTO(dto MissionDTO) (*mission.Contract, error) {
	if !dto.HasContract {
		return nil, nil
	}
	if dto.ContractStart == nil || dto.ContractEnd == nil {
		return nil, errors.New("contract row is missing its period bounds")
	}

	period, err := kernel.NewDateRange(*dto.ContractStart, *dto.ContractEnd)
	if err != nil {
		return nil, err
	}

	salaryMode, err := mission.SalaryModeFromString(dto.SalaryMode)
	if err != nil {
		return nil, err
	}

	salary, err := mission.NewSalary(
		dto.SalaryAmount, salaryMode, dto.SalaryCurrency, dto.SalaryLocked, dto.SalaryComment)
	if err != nil {
		return nil, err
	}

	perDiem, err := mission.NewPerDiem(
		dto.PerDiemAmount, dto.PerDiemEnabled, dto.PerDiemLocked, dto.PerDiemComment)
	if err != nil {
		return nil, err
	}

	return mission.RestoreContract(period, salary, perDiem, dto.ContractNotes, dto.ContractZeroHour)
}

func emailDataFromDTO(dto MissionDTO) (*mission.EmailData, error) {
	if !dto.HasEmailData {
		return nil, nil
	}

	var fees *mission.Fees
	if dto.EmailFees != nil {
		fees = &mission.Fees{
			DailySalary:     dto.EmailFees.DailySalary,
			TotalSalary:     dto.EmailFees.TotalSalary,
			DailyPerDiem:    dto.EmailFees.DailyPerDiem,
			TotalPerDiem:    dto.EmailFees.TotalPerDiem,
			TotalCost:       dto.EmailFees.TotalCost,
			MarginAmount:    dto.EmailFees.MarginAmount,
			TotalWithMargin: dto.EmailFees.TotalWithMargin,
		}
	}

	return mission.NewEmailData(dto.EmailRecipient, dto.EmailSubject, dto.EmailBody, fees)
}

func validationFromDTO(dto MissionDTO) (*mission.ValidationRecord, error) {
	if !dto.HasValidation {
		return nil, nil
	}
	if dto.ValidationRecordedAt == nil {
		return nil, errors.New("validation row is missing its timestamp")
	}

	return mission.NewValidationRecord(
		dto.ValidationComments,
		dto.BankDetailsConfirmed,
		dto.ReportedIssues,
		dto.PaymentIssue,
		*dto.ValidationRecordedAt,
	)
}

func dateModificationFromDTO(dto MissionDTO) (*mission.DateModificationRequest, error) {
	if !dto.HasDateModification {
		return nil, nil
	}
	if dto.DateModOrigStart == nil || dto.DateModOrigEnd == nil ||
		dto.DateModReqStart == nil || dto.DateModReqEnd == nil || dto.DateModRequestedAt == nil {
		return nil, errors.New("date modification row is missing its bounds")
	}

	original, err := kernel.NewDateRange(*dto.DateModOrigStart, *dto.DateModOrigEnd)
	if err != nil {
		return nil, err
	}
	requested, err := kernel.NewDateRange(*dto.DateModReqStart, *dto.DateModReqEnd)
	if err != nil {
		return nil, err
	}
	status, err := mission.DateModificationStatusFromString(dto.DateModStatus)
	if err != nil {
		return nil, err
	}

	return mission.RestoreDateModificationRequest(
		original, requested, dto.DateModReason, status, *dto.DateModRequestedAt, dto.DateModResolvedAt)
}

func serviceInvoiceFromDTO(dto MissionDTO) (*mission.ServiceInvoice, error) {
	if !dto.HasServiceInvoice {
		return nil, nil
	}

	lines := make([]mission.InvoiceLine, 0, len(dto.InvoiceLines))
	for _, lineDTO := range dto.InvoiceLines {
		line, err := mission.NewInvoiceLine(lineDTO.Description, lineDTO.Quantity, lineDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return mission.NewServiceInvoice(lines, dto.InvoiceTaxRate)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
