package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"missions/internal/core/application/usecases/commands"
	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"
	"missions/internal/core/ports"
	"missions/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMissionRepository struct{ mock.Mock }

func (m *MockMissionRepository) Add(ctx context.Context, aggregate *mission.MissionOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMissionRepository) Update(ctx context.Context, aggregate *mission.MissionOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMissionRepository) Get(ctx context.Context, id kernel.UUID) (*mission.MissionOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.MissionOrder), args.Error(1)
}

func (m *MockMissionRepository) GetAllInStatus(
	ctx context.Context, status mission.Status,
) ([]*mission.MissionOrder, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mission.MissionOrder), args.Error(1)
}

func (m *MockMissionRepository) GetApprovedEndingBefore(
	ctx context.Context, moment time.Time,
) ([]*mission.MissionOrder, error) {
	args := m.Called(ctx, moment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mission.MissionOrder), args.Error(1)
}

type MockMissionUoW struct{ mock.Mock }

func (m *MockMissionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMissionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMissionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMissionUoW) MissionRepository() ports.MissionRepository {
	args := m.Called()
	return args.Get(0).(ports.MissionRepository)
}

type MockMissionUoWFactory struct{ mock.Mock }

func (m *MockMissionUoWFactory) Create() commands.MissionUoW {
	args := m.Called()
	return args.Get(0).(commands.MissionUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Dispatch(ctx context.Context, events []mission.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// Test data builders shared by the command handler tests.

func testAdmin(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func testCrewActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleCrew)
	require.NoError(t, err)
	return actor
}

func testMission(t *testing.T, status mission.Status) *mission.MissionOrder {
	t.Helper()

	crew, err := mission.NewCrewMember(
		kernel.NewUUID(), "Jean Moreau", "Captain", mission.CrewTypeInternal,
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

	missionOrder, err := mission.RestoreMissionOrder(mission.RestoreMissionOrderParams{
		ID:          kernel.NewUUID(),
		Version:     1,
		MissionType: mission.TypeFreelance,
		Status:      status,
		Crew:        crew,
		Aircraft:    aircraft,
		Contract:    contract,
		CreatedAt:   start,
		CreatedBy:   kernel.NewUUID(),
	})
	require.NoError(t, err)
	return missionOrder
}

func TestApproveMissionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := testAdmin(t)
	testOrder := testMission(t, mission.StatusPendingApproval)

	cmd, err := commands.NewApproveMissionCommand(testOrder.ID(), admin)
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	uow := new(MockMissionUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		missionRepo.On("Update", ctx, mock.AnythingOfType("*mission.MissionOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Dispatch", ctx, mock.AnythingOfType("[]mission.Event")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveMissionCommandHandler(factory, notifier)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Same(t, testOrder, updated)
	assert.Equal(t, mission.StatusApproved, updated.Status())

	dispatched := notifier.Calls[0].Arguments[1].([]mission.Event)
	require.Len(t, dispatched, 1)
	assert.Equal(t, mission.EventMissionApproved, dispatched[0].Kind)

	missionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestApproveMissionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApproveMissionCommand{} // not constructed properly

	factory := new(MockMissionUoWFactory)
	notifier := new(MockNotifier)
	handler := commands.NewApproveMissionCommandHandler(factory, notifier)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrApproveMissionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestApproveMissionCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApproveMissionCommand(kernel.NewUUID(), testAdmin(t))
	require.NoError(t, err)

	uow := new(MockMissionUoW)
	factory := new(MockMissionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewApproveMissionCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestApproveMissionCommandHandler_Handle_MissionNotFound(t *testing.T) {
	ctx := t.Context()
	missionID := kernel.NewUUID()
	cmd, err := commands.NewApproveMissionCommand(missionID, testAdmin(t))
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	uow := new(MockMissionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("Get", ctx, missionID).
			Return(nil, errs.NewObjectNotFoundError("missionID", missionID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveMissionCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestApproveMissionCommandHandler_Handle_AuthorizationError(t *testing.T) {
	ctx := t.Context()
	testOrder := testMission(t, mission.StatusPendingApproval)
	crewMember := testCrewActor(t, testOrder.Crew().ID())

	cmd, err := commands.NewApproveMissionCommand(testOrder.ID(), crewMember)
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	uow := new(MockMissionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveMissionCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	missionRepo.AssertNotCalled(t, "Update")
}

func TestApproveMissionCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	testOrder := testMission(t, mission.StatusPendingApproval)

	cmd, err := commands.NewApproveMissionCommand(testOrder.ID(), testAdmin(t))
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	uow := new(MockMissionUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		missionRepo.On("Update", ctx, mock.AnythingOfType("*mission.MissionOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveMissionCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	notifier.AssertNotCalled(t, "Dispatch")
}

func TestApproveMissionCommandHandler_Handle_NotifierErrorIsIgnored(t *testing.T) {
	ctx := t.Context()
	testOrder := testMission(t, mission.StatusPendingApproval)

	cmd, err := commands.NewApproveMissionCommand(testOrder.ID(), testAdmin(t))
	require.NoError(t, err)

	missionRepo := new(MockMissionRepository)
	uow := new(MockMissionUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MissionRepository").Return(missionRepo).Once(),
		missionRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		missionRepo.On("Update", ctx, mock.AnythingOfType("*mission.MissionOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Dispatch", ctx, mock.AnythingOfType("[]mission.Event")).
			Return(errors.New("smtp down")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMissionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveMissionCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, mission.StatusApproved, testOrder.Status())
}
