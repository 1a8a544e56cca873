package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	missionhttp "missions/internal/adapters/in/http"
	"missions/internal/core/application/usecases/commands"
	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"
	"missions/internal/core/domain/services"
	"missions/internal/core/ports"
	"missions/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() (*echo.Echo, *missionhttp.Server) {
	e := echo.New()
	server := missionhttp.NewServer(
		missionhttp.Handlers{},
		services.NewPricingEngine(services.DefaultRateTable()),
	)
	server.RegisterRoutes(e)
	return e, server
}

func Test_Server_Health(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func Test_Server_CreateQuote_Manual(t *testing.T) {
	e, _ := newTestServer()

	body := `{
		"manualRate": 850,
		"manualPerDiem": 120,
		"mode": "daily",
		"durationDays": 3,
		"perDiemEnabled": true,
		"margin": {"type": "percentage", "value": 10}
	}`
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var quote missionhttp.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.InDelta(t, 850.0, quote.DailySalary, 0.001)
	assert.InDelta(t, 2550.0, quote.TotalSalary, 0.001)
	assert.InDelta(t, 360.0, quote.TotalPerDiem, 0.001)
	assert.InDelta(t, 2910.0, quote.TotalCost, 0.001)
	assert.InDelta(t, 291.0, quote.MarginAmount, 0.001)
	assert.InDelta(t, 3201.0, quote.TotalWithMargin, 0.001)
}

func Test_Server_CreateQuote_InvalidMode(t *testing.T) {
	e, _ := newTestServer()

	body := `{"manualRate": 850, "mode": "hourly", "durationDays": 3}`
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func Test_Server_CreateQuote_UnknownAutoRates(t *testing.T) {
	e, _ := newTestServer()

	body := `{"auto": {"registration": "X-XXXX", "position": "Navigator"}, "durationDays": 2}`
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func Test_Server_CreateMission_MissingActorHeaders(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/missions", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func Test_Server_GetMission_MalformedID(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/missions/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

// In-memory unit of work backing the endpoint tests that drive real
// command handlers.

type stubMissionRepo struct {
	missions map[kernel.UUID]*mission.MissionOrder
}

func newStubMissionRepo() *stubMissionRepo {
	return &stubMissionRepo{missions: make(map[kernel.UUID]*mission.MissionOrder)}
}

func (r *stubMissionRepo) Add(_ context.Context, aggregate *mission.MissionOrder) error {
	r.missions[aggregate.ID()] = aggregate
	return nil
}

func (r *stubMissionRepo) Update(_ context.Context, aggregate *mission.MissionOrder) error {
	r.missions[aggregate.ID()] = aggregate
	return nil
}

func (r *stubMissionRepo) Get(_ context.Context, id kernel.UUID) (*mission.MissionOrder, error) {
	missionOrder, ok := r.missions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("mission", id.String())
	}
	return missionOrder, nil
}

func (r *stubMissionRepo) GetAllInStatus(
	_ context.Context, status mission.Status,
) ([]*mission.MissionOrder, error) {
	var result []*mission.MissionOrder
	for _, missionOrder := range r.missions {
		if missionOrder.Status() == status {
			result = append(result, missionOrder)
		}
	}
	return result, nil
}

func (r *stubMissionRepo) GetApprovedEndingBefore(
	_ context.Context, moment time.Time,
) ([]*mission.MissionOrder, error) {
	var result []*mission.MissionOrder
	for _, missionOrder := range r.missions {
		contract := missionOrder.Contract()
		if missionOrder.Status() == mission.StatusApproved &&
			contract != nil && contract.Period().End().Before(moment) {
			result = append(result, missionOrder)
		}
	}
	return result, nil
}

type stubMissionUoW struct{ repo *stubMissionRepo }

func (u *stubMissionUoW) Begin(context.Context) error    { return nil }
func (u *stubMissionUoW) Commit(context.Context) error   { return nil }
func (u *stubMissionUoW) Rollback(context.Context) error { return nil }
func (u *stubMissionUoW) MissionRepository() ports.MissionRepository {
	return u.repo
}

type stubMissionUoWFactory struct{ repo *stubMissionRepo }

func (f stubMissionUoWFactory) Create() commands.MissionUoW {
	return &stubMissionUoW{repo: f.repo}
}

type stubNotifier struct{}

func (stubNotifier) Dispatch(context.Context, []mission.Event) error { return nil }

func newCommandTestServer(repo *stubMissionRepo) *echo.Echo {
	factory := stubMissionUoWFactory{repo: repo}
	notifier := stubNotifier{}

	handlers := missionhttp.Handlers{
		CreateMission:     commands.NewCreateMissionCommandHandler(factory),
		ApproveMission:    commands.NewApproveMissionCommandHandler(factory, notifier),
		StartExecution:    commands.NewStartExecutionCommandHandler(factory, notifier),
		CompleteExecution: commands.NewCompleteExecutionCommandHandler(factory, notifier),
	}

	e := echo.New()
	server := missionhttp.NewServer(handlers, services.NewPricingEngine(services.DefaultRateTable()))
	server.RegisterRoutes(e)
	return e
}

func serverTestMission(t *testing.T, status mission.Status) *mission.MissionOrder {
	t.Helper()

	crew, err := mission.NewCrewMember(
		kernel.NewUUID(), "Jean Moreau", "Captain", mission.CrewTypeFreelancer,
		"jean@example.com", "+33600000000")
	require.NoError(t, err)

	aircraft, err := mission.NewAircraft(kernel.NewUUID(), "F-HJCB", "Falcon 7X")
	require.NoError(t, err)

	start := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	period, err := kernel.NewDateRange(start, start.AddDate(0, 0, 2))
	require.NoError(t, err)
	salary, err := mission.NewSalary(850, mission.SalaryModeDaily, "EUR", true, "")
	require.NoError(t, err)
	perDiem, err := mission.NewPerDiem(120, true, true, "")
	require.NoError(t, err)
	contract, err := mission.NewContract(period, salary, perDiem, "")
	require.NoError(t, err)

	emailData, err := mission.NewEmailData(
		"client@example.com", "Mission quote", "Please confirm the attached terms.",
		&mission.Fees{TotalCost: 2910, MarginAmount: 291, TotalWithMargin: 3201})
	require.NoError(t, err)

	missionOrder, err := mission.RestoreMissionOrder(mission.RestoreMissionOrderParams{
		ID:          kernel.NewUUID(),
		Version:     1,
		MissionType: mission.TypeFreelance,
		Status:      status,
		Crew:        crew,
		Aircraft:    aircraft,
		Contract:    contract,
		EmailData:   emailData,
		CreatedAt:   time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC),
		CreatedBy:   kernel.NewUUID(),
	})
	require.NoError(t, err)
	return missionOrder
}

func adminHeaders(req *nethttp.Request) {
	req.Header.Set(missionhttp.HeaderActorID, uuid.NewString())
	req.Header.Set(missionhttp.HeaderActorRole, "admin")
}

func Test_Server_ApproveMission_ReturnsUpdatedMission(t *testing.T) {
	repo := newStubMissionRepo()
	missionOrder := serverTestMission(t, mission.StatusPendingApproval)
	repo.missions[missionOrder.ID()] = missionOrder

	e := newCommandTestServer(repo)

	req := httptest.NewRequest(
		nethttp.MethodPost, "/api/v1/missions/"+missionOrder.ID().String()+"/approve", nil)
	adminHeaders(req)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var envelope missionhttp.MissionEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "approved", envelope.Mission.Status)
	assert.Equal(t, missionOrder.ID().String(), envelope.Mission.ID.String())
	assert.NotNil(t, envelope.Mission.ApprovedAt)

	require.NotNil(t, envelope.Mission.EmailData)
	require.NotNil(t, envelope.Mission.EmailData.Fees)
	assert.InDelta(t, 291.0, envelope.Mission.EmailData.Fees.MarginAmount, 0.001)
	assert.InDelta(t, 3201.0, envelope.Mission.EmailData.Fees.TotalWithMargin, 0.001)
}

func Test_Server_StartExecution_WrongStatus_ReturnsBadRequest(t *testing.T) {
	repo := newStubMissionRepo()
	missionOrder := serverTestMission(t, mission.StatusPendingApproval)
	repo.missions[missionOrder.ID()] = missionOrder

	e := newCommandTestServer(repo)

	req := httptest.NewRequest(
		nethttp.MethodPost, "/api/v1/missions/"+missionOrder.ID().String()+"/start", nil)
	adminHeaders(req)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	var errResp missionhttp.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Message, "status precondition failed")
	assert.Contains(t, errResp.Message, "pending_approval")
}

func Test_Server_CreateMission_WithMargin_StoresFeesWithMargin(t *testing.T) {
	repo := newStubMissionRepo()
	e := newCommandTestServer(repo)

	body := `{
		"missionType": "freelance",
		"crew": {
			"id": "` + uuid.NewString() + `",
			"name": "Jean Moreau",
			"position": "Captain",
			"type": "freelancer",
			"email": "jean@example.com"
		},
		"aircraft": {
			"id": "` + uuid.NewString() + `",
			"registration": "F-HJCB",
			"type": "Falcon 7X"
		},
		"contract": {
			"startDate": "2024-06-10T00:00:00Z",
			"endDate": "2024-06-12T00:00:00Z",
			"salary": {"amount": 850, "mode": "daily", "currency": "EUR", "locked": true},
			"perDiem": {"amount": 120, "enabled": true, "locked": true}
		},
		"emailData": {
			"recipient": "client@example.com",
			"subject": "Mission quote",
			"body": "Please confirm the attached terms.",
			"margin": {"type": "percentage", "value": 10}
		}
	}`
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/missions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	adminHeaders(req)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusCreated, rec.Code)
	require.Len(t, repo.missions, 1)

	for _, stored := range repo.missions {
		require.NotNil(t, stored.EmailData())
		fees := stored.EmailData().Fees()
		require.NotNil(t, fees)
		assert.Positive(t, fees.MarginAmount)
		assert.InDelta(t, fees.TotalCost*0.10, fees.MarginAmount, 0.001)
		assert.InDelta(t, fees.TotalCost+fees.MarginAmount, fees.TotalWithMargin, 0.001)
	}
}
