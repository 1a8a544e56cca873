// Package http exposes the mission order use cases over a REST API.
// Handlers translate between the JSON contracts and the application layer:
// they parse the caller's identity from headers, build commands, and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"missions/internal/core/application/usecases/commands"
	"missions/internal/core/application/usecases/queries"
	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"
	"missions/internal/core/domain/services"
	"missions/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names carrying the authenticated caller. Authentication itself
// happens upstream; these handlers trust the gateway-injected identity.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Handlers bundles the application use cases the server depends on.
type Handlers struct {
	CreateMission          commands.CreateMissionCommandHandler
	ApproveMission         commands.ApproveMissionCommandHandler
	RejectMission          commands.RejectMissionCommandHandler
	ApproveClientResponse  commands.ApproveClientResponseCommandHandler
	RejectClientResponse   commands.RejectClientResponseCommandHandler
	AssignToCrew           commands.AssignToCrewCommandHandler
	StartExecution         commands.StartExecutionCommandHandler
	CompleteExecution      commands.CompleteExecutionCommandHandler
	ValidateMission        commands.ValidateMissionCommandHandler
	RequestDateChange      commands.RequestDateModificationCommandHandler
	ResolveDateChange      commands.ResolveDateModificationCommandHandler
	SweepCompletedMissions commands.SweepCompletedMissionsCommandHandler

	GetActiveMissions queries.GetActiveMissionsQueryHandler
	GetMission        queries.GetMissionQueryHandler
}

// Server handles HTTP requests for the mission order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	pricing  services.PricingEngine
}

// NewServer creates a new HTTP server with the required use case handlers.
func NewServer(handlers Handlers, pricing services.PricingEngine) *Server {
	return &Server{
		handlers: handlers,
		pricing:  pricing,
	}
}

// RegisterRoutes binds every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/missions", s.CreateMission)
	api.GET("/missions", s.GetMissions)
	api.GET("/missions/:id", s.GetMission)
	api.POST("/missions/sweep", s.SweepCompletedMissions)
	api.POST("/missions/:id/approve", s.ApproveMission)
	api.POST("/missions/:id/reject", s.RejectMission)
	api.POST("/missions/:id/client-response/approve", s.ApproveClientResponse)
	api.POST("/missions/:id/client-response/reject", s.RejectClientResponse)
	api.POST("/missions/:id/assign", s.AssignToCrew)
	api.POST("/missions/:id/start", s.StartExecution)
	api.POST("/missions/:id/complete", s.CompleteExecution)
	api.POST("/missions/:id/validate", s.ValidateMission)
	api.POST("/missions/:id/date-modification", s.RequestDateModification)
	api.POST("/missions/:id/date-modification/resolve", s.ResolveDateModification)
	api.POST("/quotes", s.CreateQuote)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateMission handles POST /api/v1/missions - creates a new mission order.
func (s *Server) CreateMission(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewMission
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	missionType, err := mission.TypeFromString(body.MissionType)
	if err != nil {
		return badRequest(ctx, err)
	}

	crew, err := crewFromRequest(body.Crew)
	if err != nil {
		return badRequest(ctx, err)
	}

	aircraftID, err := kernel.UUIDFromBytes(body.Aircraft.ID[:])
	if err != nil {
		return badRequest(ctx, err)
	}
	aircraft, err := mission.NewAircraft(aircraftID, body.Aircraft.Registration, body.Aircraft.Type)
	if err != nil {
		return badRequest(ctx, err)
	}

	flights := make([]mission.FlightLeg, 0, len(body.Flights))
	for _, legBody := range body.Flights {
		leg, legErr := mission.NewFlightLeg(
			legBody.Departure, legBody.Arrival, legBody.Date, legBody.FlightNumber)
		if legErr != nil {
			return badRequest(ctx, legErr)
		}
		flights = append(flights, leg)
	}

	contract, err := contractFromRequest(body.Contract)
	if err != nil {
		return badRequest(ctx, err)
	}

	emailData, err := s.emailDataFromRequest(body.EmailData, contract)
	if err != nil {
		return badRequest(ctx, err)
	}

	var ownerApproval *mission.OwnerApproval
	if body.OwnerApproval != nil {
		ownerApproval, err = mission.NewOwnerApproval(
			body.OwnerApproval.OwnerName, body.OwnerApproval.Approved, body.OwnerApproval.ApprovedAt)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	serviceInvoice, err := serviceInvoiceFromRequest(body.ServiceInvoice)
	if err != nil {
		return badRequest(ctx, err)
	}

	missionID := kernel.NewUUID()
	cmd, err := commands.NewCreateMissionCommand(
		missionID, missionType, actor, crew, aircraft, flights,
		contract, emailData, body.FinanceReview, ownerApproval, serviceInvoice)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CreateMission.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MissionCreated{ID: missionID.Bytes()})
}

// ApproveMission handles POST /api/v1/missions/:id/approve.
func (s *Server) ApproveMission(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveMissionCommand(missionID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.ApproveMission.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// RejectMission handles POST /api/v1/missions/:id/reject.
func (s *Server) RejectMission(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body RejectRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewRejectMissionCommand(missionID, actor, body.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.RejectMission.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// ApproveClientResponse handles POST /api/v1/missions/:id/client-response/approve.
func (s *Server) ApproveClientResponse(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveClientResponseCommand(missionID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.ApproveClientResponse.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// RejectClientResponse handles POST /api/v1/missions/:id/client-response/reject.
func (s *Server) RejectClientResponse(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body RejectRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewRejectClientResponseCommand(missionID, actor, body.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.RejectClientResponse.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// AssignToCrew handles POST /api/v1/missions/:id/assign.
func (s *Server) AssignToCrew(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignToCrewCommand(missionID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.AssignToCrew.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// StartExecution handles POST /api/v1/missions/:id/start.
func (s *Server) StartExecution(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewStartExecutionCommand(missionID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.StartExecution.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// CompleteExecution handles POST /api/v1/missions/:id/complete.
func (s *Server) CompleteExecution(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CompleteRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewCompleteExecutionCommand(
		missionID, actor, body.ActualEndDate, body.ExtensionReason)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.CompleteExecution.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// ValidateMission handles POST /api/v1/missions/:id/validate.
func (s *Server) ValidateMission(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body ValidateRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	payload := mission.ValidationPayload{
		Comments:             body.Comments,
		BankDetailsConfirmed: body.BankDetailsConfirmed,
		ReportedIssues:       body.ReportedIssues,
		PaymentIssue:         body.PaymentIssue,
		DateChangeReason:     body.DateChangeReason,
	}
	if body.RequestedStartDate != nil && body.RequestedEndDate != nil {
		requested, rangeErr := kernel.NewDateRange(*body.RequestedStartDate, *body.RequestedEndDate)
		if rangeErr != nil {
			return badRequest(ctx, rangeErr)
		}
		payload.RequestedDates = &requested
	}

	cmd, err := commands.NewValidateMissionCommand(missionID, actor, payload)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.ValidateMission.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// RequestDateModification handles POST /api/v1/missions/:id/date-modification.
func (s *Server) RequestDateModification(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body DateModificationRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	requested, err := kernel.NewDateRange(body.RequestedStartDate, body.RequestedEndDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRequestDateModificationCommand(missionID, actor, requested, body.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.RequestDateChange.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// ResolveDateModification handles POST /api/v1/missions/:id/date-modification/resolve.
func (s *Server) ResolveDateModification(ctx echo.Context) error {
	missionID, actor, err := s.missionAndActor(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body ResolveDateModificationRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewResolveDateModificationCommand(missionID, actor, body.Approve)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.handlers.ResolveDateChange.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MissionEnvelope{Mission: missionDetailsFromOrder(updated)})
}

// SweepCompletedMissions handles POST /api/v1/missions/sweep - advances every
// approved mission whose contract period has elapsed to pending validation.
func (s *Server) SweepCompletedMissions(ctx echo.Context) error {
	cmd := commands.NewSweepCompletedMissionsCommand()

	advanced, err := s.handlers.SweepCompletedMissions.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SweepResult{Advanced: advanced})
}

// GetMissions handles GET /api/v1/missions - lists missions still in flight.
func (s *Server) GetMissions(ctx echo.Context) error {
	query := queries.NewGetActiveMissionsQuery()

	missions, err := s.handlers.GetActiveMissions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := make([]MissionSummary, len(missions))
	for i, m := range missions {
		response[i] = MissionSummary{
			ID:                   m.ID.Bytes(),
			MissionType:          m.MissionType,
			Status:               m.Status,
			CrewName:             m.CrewName,
			AircraftRegistration: m.AircraftRegistration,
			StartDate:            m.StartDate,
			EndDate:              m.EndDate,
			Version:              m.Version,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMission handles GET /api/v1/missions/:id - retrieves one mission.
func (s *Server) GetMission(ctx echo.Context) error {
	missionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetMissionQuery(missionID)
	if err != nil {
		return badRequest(ctx, err)
	}

	m, err := s.handlers.GetMission.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, missionDetailsFromQuery(m))
}

// missionDetailsFromQuery maps the flat read model onto the response shape,
// folding the flagged optional blocks back into nested records.
func missionDetailsFromQuery(m queries.GetMissionQueryResponse) MissionDetails {
	details := MissionDetails{
		ID:                   m.ID.Bytes(),
		MissionType:          m.MissionType,
		Status:               m.Status,
		Version:              m.Version,
		CrewName:             m.CrewName,
		CrewPosition:         m.CrewPosition,
		CrewType:             m.CrewType,
		AircraftRegistration: m.AircraftRegistration,
		AircraftType:         m.AircraftType,
		HasContract:          m.HasContract,
		ContractStart:        m.ContractStart,
		ContractEnd:          m.ContractEnd,
		SalaryAmount:         m.SalaryAmount,
		SalaryMode:           m.SalaryMode,
		SalaryCurrency:       m.SalaryCurrency,
		PerDiemAmount:        m.PerDiemAmount,
		PerDiemEnabled:       m.PerDiemEnabled,
		ZeroHour:             m.ZeroHour,
		ActualEndDate:        m.ActualEndDate,
		WasExtended:          m.WasExtended,
		ExtensionReason:      m.ExtensionReason,
		RejectionReason:      m.RejectionReason,
		CreatedAt:            m.CreatedAt,
		ApprovedAt:           m.ApprovedAt,
		ValidatedAt:          m.ValidatedAt,
	}

	if m.HasEmailData {
		view := EmailDataDetails{
			Recipient: m.EmailRecipient,
			Subject:   m.EmailSubject,
			Body:      m.EmailBody,
		}
		if m.EmailFees != nil {
			view.Fees = &Fees{
				DailySalary:     m.EmailFees.DailySalary,
				TotalSalary:     m.EmailFees.TotalSalary,
				DailyPerDiem:    m.EmailFees.DailyPerDiem,
				TotalPerDiem:    m.EmailFees.TotalPerDiem,
				TotalCost:       m.EmailFees.TotalCost,
				MarginAmount:    m.EmailFees.MarginAmount,
				TotalWithMargin: m.EmailFees.TotalWithMargin,
			}
		}
		details.EmailData = &view
	}

	if m.HasValidation && m.ValidationRecordedAt != nil {
		details.Validation = &ValidationDetails{
			Comments:             m.ValidationComments,
			BankDetailsConfirmed: m.BankDetailsConfirmed,
			ReportedIssues:       m.ReportedIssues,
			PaymentIssue:         m.PaymentIssue,
			RecordedAt:           *m.ValidationRecordedAt,
		}
	}

	if m.HasDateModification &&
		m.DateModOriginalStart != nil && m.DateModOriginalEnd != nil &&
		m.DateModRequestedStart != nil && m.DateModRequestedEnd != nil &&
		m.DateModRequestedAt != nil {
		details.DateModification = &DateModificationDetails{
			OriginalStartDate:  *m.DateModOriginalStart,
			OriginalEndDate:    *m.DateModOriginalEnd,
			RequestedStartDate: *m.DateModRequestedStart,
			RequestedEndDate:   *m.DateModRequestedEnd,
			Reason:             m.DateModReason,
			Status:             m.DateModStatus,
			RequestedAt:        *m.DateModRequestedAt,
			ResolvedAt:         m.DateModResolvedAt,
		}
	}

	return details
}

// CreateQuote handles POST /api/v1/quotes - computes a pricing preview
// without touching any mission.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var body QuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	params := services.QuoteParams{
		ManualRate:     body.ManualRate,
		ManualPerDiem:  body.ManualPerDiem,
		DurationDays:   body.DurationDays,
		PerDiemEnabled: body.PerDiemEnabled,
	}

	if body.Auto != nil {
		params.Auto = &services.AutomaticRates{
			Registration: body.Auto.Registration,
			Position:     body.Auto.Position,
		}
	} else {
		mode, err := mission.SalaryModeFromString(body.Mode)
		if err != nil {
			return badRequest(ctx, err)
		}
		params.Mode = mode
	}

	if body.Margin != nil {
		marginType, err := marginTypeFromString(body.Margin.Type)
		if err != nil {
			return badRequest(ctx, err)
		}
		params.Margin = &services.MarginConfig{Type: marginType, Value: body.Margin.Value}
	}

	quote := s.pricing.Calculate(params)
	if quote == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "No rate found for the given aircraft and position",
		})
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		DailySalary:     quote.DailySalary,
		TotalSalary:     quote.TotalSalary,
		DailyPerDiem:    quote.DailyPerDiem,
		TotalPerDiem:    quote.TotalPerDiem,
		TotalCost:       quote.TotalCost,
		MarginAmount:    quote.MarginAmount,
		TotalWithMargin: quote.TotalWithMargin,
	})
}

// actorFromRequest parses the caller's identity from the gateway headers.
func (s *Server) actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(actorID, role)
}

// missionAndActor parses the mission ID path parameter and the caller.
func (s *Server) missionAndActor(ctx echo.Context) (kernel.UUID, kernel.Actor, error) {
	missionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.Actor{}, err
	}

	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.Actor{}, err
	}

	return missionID, actor, nil
}

func crewFromRequest(body CrewMember) (mission.CrewMember, error) {
	crewID, err := kernel.UUIDFromBytes(body.ID[:])
	if err != nil {
		return mission.CrewMember{}, err
	}

	crewType, err := mission.CrewTypeFromString(body.Type)
	if err != nil {
		return mission.CrewMember{}, err
	}

	return mission.NewCrewMember(crewID, body.Name, body.Position, crewType, body.Email, body.Phone)
}

func contractFromRequest(body *Contract) (*mission.Contract, error) {
	if body == nil {
		return nil, nil
	}

	period, err := kernel.NewDateRange(body.StartDate, body.EndDate)
	if err != nil {
		return nil, err
	}

	mode, err := mission.SalaryModeFromString(body.Salary.Mode)
	if err != nil {
		return nil, err
	}

	salary, err := mission.NewSalary(
		body.Salary.Amount, mode, body.Salary.Currency, body.Salary.Locked, body.Salary.Comment)
	if err != nil {
		return nil, err
	}

	perDiem, err := mission.NewPerDiem(
		body.PerDiem.Amount, body.PerDiem.Enabled, body.PerDiem.Locked, body.PerDiem.Comment)
	if err != nil {
		return nil, err
	}

	return mission.NewContract(period, salary, perDiem, body.Notes)
}

// emailDataFromRequest builds the client approval email. The fees snapshot
// is always computed from the contract terms plus the requested margin, so
// a client approval email requires a contract.
func (s *Server) emailDataFromRequest(
	body *EmailData, contract *mission.Contract,
) (*mission.EmailData, error) {
	if body == nil {
		return nil, nil
	}
	if contract == nil {
		return nil, errs.NewValueIsRequiredError("contract")
	}

	params := services.QuoteParams{
		ManualRate:     contract.Salary().Amount(),
		ManualPerDiem:  contract.PerDiem().Amount(),
		Mode:           contract.Salary().Mode(),
		DurationDays:   contract.DurationDays(),
		PerDiemEnabled: contract.PerDiem().Enabled(),
	}
	if body.Margin != nil {
		marginType, err := marginTypeFromString(body.Margin.Type)
		if err != nil {
			return nil, err
		}
		params.Margin = &services.MarginConfig{Type: marginType, Value: body.Margin.Value}
	}

	quote := s.pricing.Calculate(params)
	fees := quote.Fees()

	return mission.NewEmailData(body.Recipient, body.Subject, body.Body, &fees)
}

func serviceInvoiceFromRequest(body *ServiceInvoice) (*mission.ServiceInvoice, error) {
	if body == nil {
		return nil, nil
	}

	lines := make([]mission.InvoiceLine, 0, len(body.Lines))
	for _, lineBody := range body.Lines {
		line, err := mission.NewInvoiceLine(lineBody.Description, lineBody.Quantity, lineBody.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return mission.NewServiceInvoice(lines, body.TaxRate)
}

// missionDetailsFromOrder flattens the aggregate into the response shape
// every successful transition returns.
func missionDetailsFromOrder(m *mission.MissionOrder) MissionDetails {
	details := MissionDetails{
		ID:                   m.ID().Bytes(),
		MissionType:          m.MissionType().String(),
		Status:               m.Status().String(),
		Version:              m.Version(),
		CrewName:             m.Crew().Name(),
		CrewPosition:         m.Crew().Position(),
		CrewType:             m.Crew().Type().String(),
		AircraftRegistration: m.Aircraft().Registration(),
		AircraftType:         m.Aircraft().AircraftType(),
		ActualEndDate:        m.ActualEndDate(),
		WasExtended:          m.WasExtended(),
		ExtensionReason:      m.ExtensionReason(),
		RejectionReason:      m.RejectionReason(),
		CreatedAt:            m.CreatedAt(),
		ApprovedAt:           m.ApprovedAt(),
		ValidatedAt:          m.ValidatedAt(),
	}

	if contract := m.Contract(); contract != nil {
		start := contract.Period().Start()
		end := contract.Period().End()
		details.HasContract = true
		details.ContractStart = &start
		details.ContractEnd = &end
		details.SalaryAmount = contract.Salary().Amount()
		details.SalaryMode = contract.Salary().Mode().String()
		details.SalaryCurrency = contract.Salary().Currency()
		details.PerDiemAmount = contract.PerDiem().Amount()
		details.PerDiemEnabled = contract.PerDiem().Enabled()
		details.ZeroHour = contract.IsZeroHour()
	}

	if emailData := m.EmailData(); emailData != nil {
		view := EmailDataDetails{
			Recipient: emailData.Recipient(),
			Subject:   emailData.Subject(),
			Body:      emailData.Body(),
		}
		if fees := emailData.Fees(); fees != nil {
			view.Fees = &Fees{
				DailySalary:     fees.DailySalary,
				TotalSalary:     fees.TotalSalary,
				DailyPerDiem:    fees.DailyPerDiem,
				TotalPerDiem:    fees.TotalPerDiem,
				TotalCost:       fees.TotalCost,
				MarginAmount:    fees.MarginAmount,
				TotalWithMargin: fees.TotalWithMargin,
			}
		}
		details.EmailData = &view
	}

	if record := m.ValidationRecord(); record != nil {
		details.Validation = &ValidationDetails{
			Comments:             record.Comments(),
			BankDetailsConfirmed: record.BankDetailsConfirmed(),
			ReportedIssues:       record.ReportedIssues(),
			PaymentIssue:         record.PaymentIssue(),
			RecordedAt:           record.ValidatedAt(),
		}
	}

	if request := m.DateModification(); request != nil {
		details.DateModification = &DateModificationDetails{
			OriginalStartDate:  request.Original().Start(),
			OriginalEndDate:    request.Original().End(),
			RequestedStartDate: request.Requested().Start(),
			RequestedEndDate:   request.Requested().End(),
			Reason:             request.Reason(),
			Status:             request.Status().String(),
			RequestedAt:        request.RequestedAt(),
			ResolvedAt:         request.ResolvedAt(),
		}
	}

	return details
}

func marginTypeFromString(s string) (services.MarginType, error) {
	switch s {
	case "percentage":
		return services.MarginPercentage, nil
	case "fixed":
		return services.MarginFixed, nil
	default:
		return services.MarginUnknown, errs.NewValueIsInvalidError("marginType")
	}
}

// badRequest writes a 400 with the given error message.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// mapDomainError translates application errors onto HTTP status codes.
func mapDomainError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStatusPrecondition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrFieldsAreMissing):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
