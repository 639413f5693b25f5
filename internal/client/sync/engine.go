package sync

import (
	"context"

	"github.com/driftlabs/driftbox/internal/telemetry"
)

// Engine is one syncable collection (bookmarks, history, ...).
// Implementations do the actual reconciliation and report raw counts into
// the session they are handed; the manager owns timing and failure
// classification. Engines run one at a time, never concurrently.
type Engine interface {
	Name() string
	Sync(ctx context.Context, stats *telemetry.EngineStatsSession) error
}

// Submitter delivers a built ping to the collector. The manager does not
// retry; transport-level retries live behind this interface.
type Submitter interface {
	SubmitPing(ctx context.Context, ping *telemetry.SyncPing) error
}
