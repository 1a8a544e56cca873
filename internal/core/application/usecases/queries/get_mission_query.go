package queries

import (
	"errors"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrGetMissionQueryIsNotConstructed = errors.New(
	"GetMissionQuery must be created via NewGetMissionQuery constructor",
)

// GetMissionQuery retrieves one mission order by its identifier.
//
// Example:
//
//	query, err := NewGetMissionQuery(missionID)
//	if err != nil {
//	    return fmt.Errorf("invalid mission ID: %w", err)
//	}
//
//	handler := NewGetMissionQueryHandler(db)
//	missionDetail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // mission does not exist
//	}
type GetMissionQuery struct { //nolint:recvcheck //using for validation
	missionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMissionQuery creates a query to retrieve a single mission.
// Validates that the mission ID is valid.
func NewGetMissionQuery(missionID kernel.UUID) (GetMissionQuery, error) {
	missionQuery := GetMissionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := missionQuery.setMissionID(missionID); err != nil {
		return GetMissionQuery{}, err
	}

	return missionQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMissionQueryIsNotConstructed if validation fails.
func (q GetMissionQuery) Validate() error {
	return q.guard.Validate(ErrGetMissionQueryIsNotConstructed)
}

// MissionID returns the unique identifier of the requested mission.
func (q GetMissionQuery) MissionID() kernel.UUID {
	return q.missionID
}

func (q *GetMissionQuery) setMissionID(missionID kernel.UUID) error {
	if err := missionID.Validate(); err != nil {
		return err
	}

	q.missionID = missionID
	return nil
}

// GetMissionQueryResponse represents the full mission detail shown to
// admins and to the crew member of record.
type GetMissionQueryResponse struct {
	ID          kernel.UUID
	MissionType string
	Status      string
	Version     int

	CrewName             string
	CrewPosition         string
	CrewType             string
	AircraftRegistration string
	AircraftType         string

	ContractStart   *time.Time
	ContractEnd     *time.Time
	SalaryAmount    float64
	SalaryMode      string
	SalaryCurrency  string
	PerDiemAmount   float64
	PerDiemEnabled  bool
	ZeroHour        bool
	HasContract     bool
	ActualEndDate   *time.Time
	WasExtended     bool
	ExtensionReason string

	RejectionReason string
	CreatedAt       time.Time
	ApprovedAt      *time.Time
	ValidatedAt     *time.Time

	HasEmailData   bool
	EmailRecipient string
	EmailSubject   string
	EmailBody      string
	EmailFees      *MissionFees

	HasValidation        bool
	ValidationComments   string
	BankDetailsConfirmed bool
	ReportedIssues       []string
	PaymentIssue         bool
	ValidationRecordedAt *time.Time

	HasDateModification   bool
	DateModOriginalStart  *time.Time
	DateModOriginalEnd    *time.Time
	DateModRequestedStart *time.Time
	DateModRequestedEnd   *time.Time
	DateModReason         string
	DateModStatus         string
	DateModRequestedAt    *time.Time
	DateModResolvedAt     *time.Time
}

// MissionFees is the stored billing breakdown of the client approval email.
type MissionFees struct {
	DailySalary     float64 `json:"dailySalary"`
	TotalSalary     float64 `json:"totalSalary"`
	DailyPerDiem    float64 `json:"dailyPerDiem"`
	TotalPerDiem    float64 `json:"totalPerDiem"`
	TotalCost       float64 `json:"totalCost"`
	MarginAmount    float64 `json:"marginAmount"`
	TotalWithMargin float64 `json:"totalWithMargin"`
}
