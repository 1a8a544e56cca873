package queries

import (
	"context"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveMissionsQueryHandler retrieves missions still in flight from the
// database. Terminal missions are excluded to keep dashboards focused on the
// current workload.
//
// Example:
//
//	handler := NewGetActiveMissionsQueryHandler(db)
//	query := NewGetActiveMissionsQuery()
//
//	activeMissions, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active missions: %v", err)
//	    return err
//	}
type GetActiveMissionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveMissionsQueryHandler creates a handler for active mission queries.
// Requires a GORM database connection for query execution.
func NewGetActiveMissionsQueryHandler(db *gorm.DB) GetActiveMissionsQueryHandler {
	return GetActiveMissionsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active missions.
// Excludes rejected, client-rejected and validated missions.
// Results are sorted by creation time, newest first.
func (h GetActiveMissionsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveMissionsQuery,
) ([]GetActiveMissionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	missions := make([]GetActiveMissionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			mission_type,
			status,
			crew_name,
			aircraft_registration,
			contract_start,
			contract_end,
			version
		FROM missions
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at DESC
	`,
		mission.StatusRejected.String(),
		mission.StatusClientRejected.String(),
		mission.StatusValidated.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var missionResp GetActiveMissionsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&missionResp.MissionType,
			&missionResp.Status,
			&missionResp.CrewName,
			&missionResp.AircraftRegistration,
			&missionResp.StartDate,
			&missionResp.EndDate,
			&missionResp.Version,
		)
		if err != nil {
			return nil, err
		}

		missionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		missionResp.ID = missionID

		missions = append(missions, missionResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return missions, nil
}
