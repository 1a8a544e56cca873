package cmd

import (
	"log/slog"
	"os"

	missionhttp "missions/internal/adapters/in/http"
	"missions/internal/adapters/out/notify"
	"missions/internal/adapters/out/postgres"
	"missions/internal/core/application/usecases/commands"
	"missions/internal/core/application/usecases/queries"
	"missions/internal/core/domain/services"
	"missions/internal/core/ports"
	"missions/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	pricing    services.PricingEngine
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	sender := notify.NewSMTPSender(
		config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	notifier := notify.NewEmailDispatcher(sender, notify.Config{
		FromName:     config.MailFromName,
		FromAddress:  config.MailFromAddress,
		AdminAddress: config.AdminAddress,
	}, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		pricing:    services.NewPricingEngine(services.DefaultRateTable()),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) missionUoWFactory() commands.MissionUoWFactory {
	return FuncMissionUoWFactory(func() commands.MissionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMissionCommandHandler() commands.CreateMissionCommandHandler {
	return commands.NewCreateMissionCommandHandler(c.missionUoWFactory())
}

func (c *CompositionRoot) CreateApproveMissionCommandHandler() commands.ApproveMissionCommandHandler {
	return commands.NewApproveMissionCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectMissionCommandHandler() commands.RejectMissionCommandHandler {
	return commands.NewRejectMissionCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateApproveClientResponseCommandHandler() commands.ApproveClientResponseCommandHandler {
	return commands.NewApproveClientResponseCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectClientResponseCommandHandler() commands.RejectClientResponseCommandHandler {
	return commands.NewRejectClientResponseCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAssignToCrewCommandHandler() commands.AssignToCrewCommandHandler {
	return commands.NewAssignToCrewCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateStartExecutionCommandHandler() commands.StartExecutionCommandHandler {
	return commands.NewStartExecutionCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteExecutionCommandHandler() commands.CompleteExecutionCommandHandler {
	return commands.NewCompleteExecutionCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateValidateMissionCommandHandler() commands.ValidateMissionCommandHandler {
	return commands.NewValidateMissionCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRequestDateModificationCommandHandler() commands.RequestDateModificationCommandHandler {
	return commands.NewRequestDateModificationCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateResolveDateModificationCommandHandler() commands.ResolveDateModificationCommandHandler {
	return commands.NewResolveDateModificationCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSweepCompletedMissionsCommandHandler() commands.SweepCompletedMissionsCommandHandler {
	return commands.NewSweepCompletedMissionsCommandHandler(c.missionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetActiveMissionsQueryHandler() queries.GetActiveMissionsQueryHandler {
	return queries.NewGetActiveMissionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMissionQueryHandler() queries.GetMissionQueryHandler {
	return queries.NewGetMissionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepCompletedMissionsCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *missionhttp.Server {
	return missionhttp.NewServer(missionhttp.Handlers{
		CreateMission:          c.CreateCreateMissionCommandHandler(),
		ApproveMission:         c.CreateApproveMissionCommandHandler(),
		RejectMission:          c.CreateRejectMissionCommandHandler(),
		ApproveClientResponse:  c.CreateApproveClientResponseCommandHandler(),
		RejectClientResponse:   c.CreateRejectClientResponseCommandHandler(),
		AssignToCrew:           c.CreateAssignToCrewCommandHandler(),
		StartExecution:         c.CreateStartExecutionCommandHandler(),
		CompleteExecution:      c.CreateCompleteExecutionCommandHandler(),
		ValidateMission:        c.CreateValidateMissionCommandHandler(),
		RequestDateChange:      c.CreateRequestDateModificationCommandHandler(),
		ResolveDateChange:      c.CreateResolveDateModificationCommandHandler(),
		SweepCompletedMissions: c.CreateSweepCompletedMissionsCommandHandler(),
		GetActiveMissions:      c.CreateGetActiveMissionsQueryHandler(),
		GetMission:             c.CreateGetMissionQueryHandler(),
	}, c.pricing)
}

type FuncMissionUoWFactory func() commands.MissionUoW

func (f FuncMissionUoWFactory) Create() commands.MissionUoW {
	return f()
}
