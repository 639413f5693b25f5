package sync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/driftlabs/driftbox/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	name   string
	syncFn func(ctx context.Context, stats *telemetry.EngineStatsSession) error
}

func (f *fakeEngine) Name() string { return f.name }

func (f *fakeEngine) Sync(ctx context.Context, stats *telemetry.EngineStatsSession) error {
	if f.syncFn == nil {
		return nil
	}
	return f.syncFn(ctx, stats)
}

type fakeSubmitter struct {
	pings []*telemetry.SyncPing
	err   error
}

func (f *fakeSubmitter) SubmitPing(_ context.Context, ping *telemetry.SyncPing) error {
	f.pings = append(f.pings, ping)
	return f.err
}

func TestManager_SyncNow(t *testing.T) {
	bookmarks := &fakeEngine{
		name: "bookmarks",
		syncFn: func(_ context.Context, stats *telemetry.EngineStatsSession) error {
			stats.RecordUpload(telemetry.UploadStats{Sent: 5, SentFailed: 1})
			stats.RecordDownload(telemetry.DownloadStats{Applied: 10, Succeeded: 9, Failed: 1, Reconciled: 2})
			return nil
		},
	}
	history := &fakeEngine{
		name: "history",
		syncFn: func(_ context.Context, stats *telemetry.EngineStatsSession) error {
			stats.RecordDownload(telemetry.DownloadStats{Applied: 3, Succeeded: 3})
			return nil
		},
	}

	sub := &fakeSubmitter{}
	m := NewManager("testUID", "testDeviceID", time.Minute, sub, bookmarks, history)

	require.NoError(t, m.SyncNow(context.Background()))
	require.Len(t, sub.pings, 1)

	ping := sub.pings[0]
	assert.Equal(t, telemetry.PingSchedule, ping.Why)
	assert.Equal(t, "testUID", ping.UID)
	assert.Equal(t, "testDeviceID", ping.DeviceID)

	require.Len(t, ping.Syncs, 1)
	rec := ping.Syncs[0]
	assert.Equal(t, telemetry.ReasonSyncNow, rec.Why)
	assert.NotZero(t, rec.When)
	assert.GreaterOrEqual(t, rec.Took, int64(0))

	require.Len(t, rec.Engines, 2)
	assert.Equal(t, "bookmarks", rec.Engines[0].Name)
	assert.Equal(t, "history", rec.Engines[1].Name)
	assert.Equal(t, telemetry.UploadStats{Sent: 5, SentFailed: 1}, rec.Engines[0].Outgoing)
	assert.Equal(t, telemetry.DownloadStats{Applied: 3, Succeeded: 3}, rec.Engines[1].Incoming)
}

func TestManager_EngineFailureDoesNotAbortRun(t *testing.T) {
	failing := &fakeEngine{
		name: "passwords",
		syncFn: func(context.Context, *telemetry.EngineStatsSession) error {
			return fmt.Errorf("refresh: %w", ErrAuthRequired)
		},
	}
	tabs := &fakeEngine{name: "tabs"}

	m := NewManager("testUID", "", time.Minute, nil, failing, tabs)

	op, err := m.runSync(context.Background(), telemetry.ReasonScheduled)
	require.NoError(t, err)

	engines := op.Engines()
	require.Len(t, engines, 2, "a failing engine must not stop the ones after it")

	require.NotNil(t, engines[0].Failure())
	assert.Equal(t, telemetry.FailureAuth, engines[0].Failure().Kind)
	assert.Nil(t, engines[1].Failure())
}

func TestManager_RejectsConcurrentRuns(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	blocking := &fakeEngine{
		name: "bookmarks",
		syncFn: func(context.Context, *telemetry.EngineStatsSession) error {
			close(started)
			<-release
			return nil
		},
	}

	m := NewManager("testUID", "", time.Minute, nil, blocking)

	done := make(chan error, 1)
	go func() {
		done <- m.SyncNow(context.Background())
	}()

	<-started
	err := m.SyncNow(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)

	close(release)
	require.NoError(t, <-done)
}

func TestManager_StopSubmitsShutdownPing(t *testing.T) {
	sub := &fakeSubmitter{}
	m := NewManager("testUID", "dev", time.Minute, sub, &fakeEngine{name: "bookmarks"})

	require.NoError(t, m.Stop(context.Background()))
	require.Len(t, sub.pings, 1)

	ping := sub.pings[0]
	assert.Equal(t, telemetry.PingShutdown, ping.Why)
	require.Len(t, ping.Syncs, 1)
	assert.Equal(t, telemetry.ReasonBackgrounded, ping.Syncs[0].Why)
}

func TestManager_SubmitErrorPropagates(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("collector down")}
	m := NewManager("testUID", "", time.Minute, sub, &fakeEngine{name: "bookmarks"})

	err := m.SyncNow(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submit ping")
}

func TestManager_StartRequiresEngines(t *testing.T) {
	m := NewManager("testUID", "", time.Minute, nil)
	assert.ErrorIs(t, m.Start(context.Background()), ErrNoEngines)
}

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind telemetry.FailureKind
	}{
		{"cancelled", context.Canceled, telemetry.FailureShutdown},
		{"deadline", context.DeadlineExceeded, telemetry.FailureShutdown},
		{"auth", fmt.Errorf("wrapped: %w", ErrAuthRequired), telemetry.FailureAuth},
		{"http", &HTTPError{StatusCode: 503}, telemetry.FailureHTTP},
		{"opaque", errors.New("disk exploded"), telemetry.FailureUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := classifyFailure(tc.err)
			require.NotNil(t, f)
			assert.Equal(t, tc.kind, f.Kind)
			if tc.kind == telemetry.FailureHTTP {
				assert.Equal(t, 503, f.Code)
			}
			if tc.kind == telemetry.FailureUnknown {
				assert.Contains(t, f.Message, "disk exploded")
			}
		})
	}
}
