package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMission is the request body for creating a mission order.
type NewMission struct {
	MissionType    string          `json:"missionType"`
	Crew           CrewMember      `json:"crew"`
	Aircraft       Aircraft        `json:"aircraft"`
	Flights        []FlightLeg     `json:"flights,omitempty"`
	Contract       *Contract       `json:"contract,omitempty"`
	EmailData      *EmailData      `json:"emailData,omitempty"`
	FinanceReview  bool            `json:"financeReview,omitempty"`
	OwnerApproval  *OwnerApproval  `json:"ownerApproval,omitempty"`
	ServiceInvoice *ServiceInvoice `json:"serviceInvoice,omitempty"`
}

// CrewMember is the crew snapshot captured at mission creation.
type CrewMember struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Type     string    `json:"type"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
}

// Aircraft is the aircraft snapshot captured at mission creation.
type Aircraft struct {
	ID           uuid.UUID `json:"id"`
	Registration string    `json:"registration"`
	Type         string    `json:"type"`
}

// FlightLeg is one leg of the mission's flight schedule.
type FlightLeg struct {
	Departure    string    `json:"departure"`
	Arrival      string    `json:"arrival"`
	Date         time.Time `json:"date"`
	FlightNumber string    `json:"flightNumber,omitempty"`
}

// Contract carries the engagement period and compensation terms.
type Contract struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Salary    Salary    `json:"salary"`
	PerDiem   PerDiem   `json:"perDiem"`
	Notes     string    `json:"notes,omitempty"`
}

// Salary is the crew compensation block of a contract.
type Salary struct {
	Amount   float64 `json:"amount"`
	Mode     string  `json:"mode"`
	Currency string  `json:"currency"`
	Locked   bool    `json:"locked"`
	Comment  string  `json:"comment,omitempty"`
}

// PerDiem is the daily allowance block of a contract.
type PerDiem struct {
	Amount  float64 `json:"amount"`
	Enabled bool    `json:"enabled"`
	Locked  bool    `json:"locked"`
	Comment string  `json:"comment,omitempty"`
}

// EmailData is the client approval email attached at creation. Fees are
// computed server side from the contract and the optional margin, never
// taken from the request.
type EmailData struct {
	Recipient string  `json:"recipient"`
	Subject   string  `json:"subject"`
	Body      string  `json:"body"`
	Margin    *Margin `json:"margin,omitempty"`
}

// OwnerApproval records the aircraft owner's consent for extra-day missions.
type OwnerApproval struct {
	OwnerName  string     `json:"ownerName"`
	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
}

// ServiceInvoice itemizes a billable service mission.
type ServiceInvoice struct {
	Lines   []InvoiceLine `json:"lines"`
	TaxRate float64       `json:"taxRate"`
}

// InvoiceLine is a single service invoice position.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// MissionCreated is returned on successful mission creation.
type MissionCreated struct {
	ID uuid.UUID `json:"id"`
}

// RejectRequest carries the reason of a rejection.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// CompleteRequest reports the actual end of execution.
type CompleteRequest struct {
	ActualEndDate   time.Time `json:"actualEndDate"`
	ExtensionReason string    `json:"extensionReason,omitempty"`
}

// ValidateRequest is the crew sign-off payload.
type ValidateRequest struct {
	Comments             string     `json:"comments,omitempty"`
	BankDetailsConfirmed bool       `json:"bankDetailsConfirmed"`
	ReportedIssues       []string   `json:"reportedIssues,omitempty"`
	PaymentIssue         bool       `json:"paymentIssue,omitempty"`
	RequestedStartDate   *time.Time `json:"requestedStartDate,omitempty"`
	RequestedEndDate     *time.Time `json:"requestedEndDate,omitempty"`
	DateChangeReason     string     `json:"dateChangeReason,omitempty"`
}

// DateModificationRequest asks for a new mission period.
type DateModificationRequest struct {
	RequestedStartDate time.Time `json:"requestedStartDate"`
	RequestedEndDate   time.Time `json:"requestedEndDate"`
	Reason             string    `json:"reason"`
}

// ResolveDateModificationRequest settles a pending date change.
type ResolveDateModificationRequest struct {
	Approve bool `json:"approve"`
}

// SweepResult reports how many missions the completion sweep advanced.
type SweepResult struct {
	Advanced int `json:"advanced"`
}

// MissionSummary is one row of the active missions listing.
type MissionSummary struct {
	ID                   uuid.UUID  `json:"id"`
	MissionType          string     `json:"missionType"`
	Status               string     `json:"status"`
	CrewName             string     `json:"crewName"`
	AircraftRegistration string     `json:"aircraftRegistration"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	Version              int        `json:"version"`
}

// MissionEnvelope wraps the mission returned by a successful transition.
type MissionEnvelope struct {
	Mission MissionDetails `json:"mission"`
}

// Fees is the billing breakdown snapshot shown to the paying party.
type Fees struct {
	DailySalary     float64 `json:"dailySalary"`
	TotalSalary     float64 `json:"totalSalary"`
	DailyPerDiem    float64 `json:"dailyPerDiem"`
	TotalPerDiem    float64 `json:"totalPerDiem"`
	TotalCost       float64 `json:"totalCost"`
	MarginAmount    float64 `json:"marginAmount"`
	TotalWithMargin float64 `json:"totalWithMargin"`
}

// EmailDataDetails is the client approval email stored on a mission.
type EmailDataDetails struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Fees      *Fees  `json:"fees,omitempty"`
}

// ValidationDetails is the crew sign-off recorded at validation.
type ValidationDetails struct {
	Comments             string    `json:"comments,omitempty"`
	BankDetailsConfirmed bool      `json:"bankDetailsConfirmed"`
	ReportedIssues       []string  `json:"reportedIssues,omitempty"`
	PaymentIssue         bool      `json:"paymentIssue,omitempty"`
	RecordedAt           time.Time `json:"recordedAt"`
}

// DateModificationDetails is the latest date change request on a mission.
type DateModificationDetails struct {
	OriginalStartDate  time.Time  `json:"originalStartDate"`
	OriginalEndDate    time.Time  `json:"originalEndDate"`
	RequestedStartDate time.Time  `json:"requestedStartDate"`
	RequestedEndDate   time.Time  `json:"requestedEndDate"`
	Reason             string     `json:"reason,omitempty"`
	Status             string     `json:"status"`
	RequestedAt        time.Time  `json:"requestedAt"`
	ResolvedAt         *time.Time `json:"resolvedAt,omitempty"`
}

// MissionDetails is the full read model of a single mission.
type MissionDetails struct {
	ID                   uuid.UUID  `json:"id"`
	MissionType          string     `json:"missionType"`
	Status               string     `json:"status"`
	Version              int        `json:"version"`
	CrewName             string     `json:"crewName"`
	CrewPosition         string     `json:"crewPosition"`
	CrewType             string     `json:"crewType"`
	AircraftRegistration string     `json:"aircraftRegistration"`
	AircraftType         string     `json:"aircraftType"`
	HasContract          bool       `json:"hasContract"`
	ContractStart        *time.Time `json:"contractStart,omitempty"`
	ContractEnd          *time.Time `json:"contractEnd,omitempty"`
	SalaryAmount         float64    `json:"salaryAmount,omitempty"`
	SalaryMode           string     `json:"salaryMode,omitempty"`
	SalaryCurrency       string     `json:"salaryCurrency,omitempty"`
	PerDiemAmount        float64    `json:"perDiemAmount,omitempty"`
	PerDiemEnabled       bool       `json:"perDiemEnabled,omitempty"`
	ZeroHour             bool       `json:"zeroHour,omitempty"`
	ActualEndDate        *time.Time `json:"actualEndDate,omitempty"`
	WasExtended          bool       `json:"wasExtended,omitempty"`
	ExtensionReason      string     `json:"extensionReason,omitempty"`
	RejectionReason      string     `json:"rejectionReason,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	ApprovedAt           *time.Time `json:"approvedAt,omitempty"`
	ValidatedAt          *time.Time `json:"validatedAt,omitempty"`

	EmailData        *EmailDataDetails        `json:"emailData,omitempty"`
	Validation       *ValidationDetails       `json:"validation,omitempty"`
	DateModification *DateModificationDetails `json:"dateModification,omitempty"`
}

// QuoteRequest asks for a pricing preview. Either the automatic block or
// the manual rates must be supplied.
type QuoteRequest struct {
	Auto           *AutoRates `json:"auto,omitempty"`
	ManualRate     float64    `json:"manualRate,omitempty"`
	ManualPerDiem  float64    `json:"manualPerDiem,omitempty"`
	Mode           string     `json:"mode,omitempty"`
	DurationDays   int        `json:"durationDays"`
	PerDiemEnabled bool       `json:"perDiemEnabled"`
	Margin         *Margin    `json:"margin,omitempty"`
}

// AutoRates selects rate-table pricing by aircraft and position.
type AutoRates struct {
	Registration string `json:"registration"`
	Position     string `json:"position"`
}

// Margin configures the billing margin of a quote.
type Margin struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// QuoteResponse is the computed pricing preview.
type QuoteResponse struct {
	DailySalary     float64 `json:"dailySalary"`
	TotalSalary     float64 `json:"totalSalary"`
	DailyPerDiem    float64 `json:"dailyPerDiem"`
	TotalPerDiem    float64 `json:"totalPerDiem"`
	TotalCost       float64 `json:"totalCost"`
	MarginAmount    float64 `json:"marginAmount"`
	TotalWithMargin float64 `json:"totalWithMargin"`
}
