package missionrepo

import (
	"context"
	"errors"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"
	"missions/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMissionRepository implements MissionRepository using GORM.
type GormMissionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMissionRepository creates a new GORM mission repository.
func NewGormMissionRepository(db *gorm.DB, tracker aggregateTracker) *GormMissionRepository {
	return &GormMissionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new mission order to the database.
func (r *GormMissionRepository) Add(ctx context.Context, aggregate *mission.MissionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing mission order to the database. The write is
// conditional on the version the aggregate was loaded with: the stored row
// must still carry that version, and the update advances it by one. A row
// that exists under a different version means a concurrent writer won.
func (r *GormMissionRepository) Update(ctx context.Context, aggregate *mission.MissionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&MissionDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&MissionDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("mission", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("version")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a mission order by ID.
func (r *GormMissionRepository) Get(ctx context.Context, id kernel.UUID) (*mission.MissionOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MissionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all mission orders in the given status.
func (r *GormMissionRepository) GetAllInStatus(
	ctx context.Context, status mission.Status,
) ([]*mission.MissionOrder, error) {
	var dtos []MissionDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetApprovedEndingBefore retrieves approved missions whose contract period
// ends strictly before the given moment. These are the candidates for the
// automatic advance to pending validation.
func (r *GormMissionRepository) GetApprovedEndingBefore(
	ctx context.Context, moment time.Time,
) ([]*mission.MissionOrder, error) {
	var dtos []MissionDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND has_contract AND contract_end < ?",
			mission.StatusApproved.String(), moment).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormMissionRepository) toDomainAll(dtos []MissionDTO) ([]*mission.MissionOrder, error) {
	missions := make([]*mission.MissionOrder, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}

	return missions, nil
}
