package ports

import (
	"context"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/core/domain/model/mission"
)

// MissionRepository defines the persistence contract for mission order
// aggregates. Provides methods for storing, retrieving, and querying
// missions based on their lifecycle status.
type MissionRepository interface {
	// Add persists a new mission order aggregate to storage.
	// The mission must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *mission.MissionOrder) error

	// Update persists changes to an existing mission order aggregate.
	// The write is conditional on the aggregate's version matching the
	// stored one; a version mismatch surfaces as a VersionIsInvalidError
	// so callers can report the conflict instead of overwriting a
	// concurrent transition.
	Update(ctx context.Context, aggregate *mission.MissionOrder) error

	// Get retrieves a mission order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*mission.MissionOrder, error)

	// GetAllInStatus retrieves all missions currently in the given status.
	GetAllInStatus(ctx context.Context, status mission.Status) ([]*mission.MissionOrder, error)

	// GetApprovedEndingBefore retrieves approved missions whose contracted
	// end date lies strictly before the given moment. Feeds the completion
	// sweep; missions already assigned to crew are never returned.
	GetApprovedEndingBefore(ctx context.Context, moment time.Time) ([]*mission.MissionOrder, error)
}
