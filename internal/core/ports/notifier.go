package ports

import (
	"context"

	"missions/internal/core/domain/model/mission"
)

// Notifier delivers the notification events a mission transition produced.
// Implementations fan events out to the configured channels (email, log).
//
// Delivery is best-effort and happens after the transaction committed: a
// failed notification never rolls a transition back. Implementations report
// the first delivery error but must attempt every event.
type Notifier interface {
	Dispatch(ctx context.Context, events []mission.Event) error
}
