package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/driftlabs/driftbox/internal/telemetry"
)

var (
	ErrSyncAlreadyRunning = errors.New("sync already running")
	ErrNoEngines          = errors.New("no engines registered")
)

// Manager drives registered engines sequentially, one run at a time, feeds
// their counts into a fresh OperationStatsSession per run, and hands the
// built ping to the submitter.
type Manager struct {
	uid       string
	deviceID  string
	interval  time.Duration
	engines   []Engine
	submitter Submitter

	wg     sync.WaitGroup
	muSync sync.Mutex
}

func NewManager(uid, deviceID string, interval time.Duration, submitter Submitter, engines ...Engine) *Manager {
	return &Manager{
		uid:       uid,
		deviceID:  deviceID,
		interval:  interval,
		engines:   engines,
		submitter: submitter,
	}
}

// Start runs a startup sync, then schedules periodic syncs until ctx is
// cancelled.
func (m *Manager) Start(ctx context.Context) error {
	if len(m.engines) == 0 {
		return ErrNoEngines
	}

	slog.Info("sync start", "engines", len(m.engines), "interval", m.interval)
	if err := m.SyncAndSubmit(ctx, telemetry.ReasonStartup, telemetry.PingSchedule); err != nil {
		slog.Error("startup sync failed", "error", err)
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		// using a timer and not a ticker to avoid queued ticks when a run
		// takes longer than the interval
		timer := time.NewTimer(m.interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
				err := m.SyncAndSubmit(ctx, telemetry.ReasonScheduled, telemetry.PingSchedule)
				if err != nil && !errors.Is(err, context.Canceled) {
					slog.Error("scheduled sync failed", "error", err)
				}
				timer.Reset(m.interval)
			}
		}
	}()

	return nil
}

// Stop drains with one final backgrounded sync whose ping is flagged as a
// shutdown submission, then waits for the schedule loop to exit. ctx here
// is a fresh shutdown context, not the (already cancelled) run context.
func (m *Manager) Stop(ctx context.Context) error {
	slog.Info("sync stop")
	err := m.SyncAndSubmit(ctx, telemetry.ReasonBackgrounded, telemetry.PingShutdown)
	m.wg.Wait()
	return err
}

// SyncNow runs a user-triggered sync immediately.
func (m *Manager) SyncNow(ctx context.Context) error {
	return m.SyncAndSubmit(ctx, telemetry.ReasonSyncNow, telemetry.PingSchedule)
}

// SyncAndSubmit runs every engine once under the given reason, builds the
// ping and submits it. Returns ErrSyncAlreadyRunning when a run is in
// flight.
func (m *Manager) SyncAndSubmit(ctx context.Context, reason telemetry.SyncReason, why telemetry.PingReason) error {
	op, err := m.runSync(ctx, reason)
	if err != nil {
		return err
	}

	ping := telemetry.BuildPing(op, why, 0)
	if m.submitter == nil {
		// dry-run mode: measure but keep the ping local
		return nil
	}
	if err := m.submitter.SubmitPing(ctx, ping); err != nil {
		return fmt.Errorf("submit ping: %w", err)
	}
	return nil
}

func (m *Manager) runSync(ctx context.Context, reason telemetry.SyncReason) (*telemetry.OperationStatsSession, error) {
	if !m.muSync.TryLock() {
		return nil, ErrSyncAlreadyRunning
	}
	defer m.muSync.Unlock()

	op := telemetry.NewOperationStatsSession(reason, m.uid, m.deviceID)
	op.Start()

	for _, e := range m.engines {
		if ctx.Err() != nil {
			break
		}

		es := op.AddEngine(e.Name())
		es.Start()
		if err := e.Sync(ctx, es); err != nil {
			es.RecordFailure(classifyFailure(err))
			slog.Error("engine sync failed", "engine", e.Name(), "error", err)
		}
		es.End()
	}

	op.End()
	slog.Info("sync done", "reason", reason, "took", op.Took(), "engines", len(op.Engines()))
	return op, nil
}
