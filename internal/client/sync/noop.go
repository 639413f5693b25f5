package sync

import (
	"context"

	"github.com/driftlabs/driftbox/internal/telemetry"
)

// NoopEngine participates in runs without reconciling anything. The daemon
// registers one until an embedding app provides real collection engines, so
// scheduled pings still flow end to end.
type NoopEngine struct {
	name string
}

func NewNoopEngine(name string) *NoopEngine {
	return &NoopEngine{name: name}
}

func (e *NoopEngine) Name() string {
	return e.name
}

func (e *NoopEngine) Sync(ctx context.Context, _ *telemetry.EngineStatsSession) error {
	return ctx.Err()
}
