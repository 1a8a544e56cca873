package queries

import (
	"errors"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/guard"
)

var ErrGetActiveMissionsQueryIsNotConstructed = errors.New(
	"GetActiveMissionsQuery must be created via NewGetActiveMissionsQuery constructor",
)

// GetActiveMissionsQuery retrieves all missions still moving through the
// lifecycle: everything except rejected, client-rejected and validated ones.
//
// Example:
//
//	query := NewGetActiveMissionsQuery()
//	handler := NewGetActiveMissionsQueryHandler(db)
//
//	missions, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active missions: %w", err)
//	}
//	fmt.Printf("Found %d active missions\n", len(missions))
type GetActiveMissionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveMissionsQuery creates a query to retrieve active missions.
// This is a parameterless query that fetches every non-terminal mission.
func NewGetActiveMissionsQuery() GetActiveMissionsQuery {
	return GetActiveMissionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveMissionsQueryIsNotConstructed if validation fails.
func (q GetActiveMissionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveMissionsQueryIsNotConstructed)
}

// GetActiveMissionsQueryResponse represents one mission in the active list.
// Contains the summary data shown on staffing dashboards.
type GetActiveMissionsQueryResponse struct {
	ID                   kernel.UUID
	MissionType          string
	Status               string
	CrewName             string
	AircraftRegistration string
	StartDate            *time.Time
	EndDate              *time.Time
	Version              int
}
