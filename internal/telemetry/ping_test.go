package telemetry

import (
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPing_Fixture(t *testing.T) {
	op := NewOperationStatsSession(ReasonStartup, "testUID", "testDeviceID")

	es := op.AddEngine("bookmarks")
	es.RecordUpload(UploadStats{Sent: 5, SentFailed: 1})
	es.RecordDownload(DownloadStats{Applied: 10, Succeeded: 9, Failed: 1, NewFailed: 0, Reconciled: 2})

	ping := BuildPing(op, PingSchedule, 0)

	require.Len(t, ping.Syncs, 1, "exactly one operation per ping today")
	sync := ping.Syncs[0]
	assert.Equal(t, ReasonStartup, sync.Why)
	assert.False(t, sync.DidLogin)

	require.Len(t, sync.Engines, 1)
	engine := sync.Engines[0]
	assert.Equal(t, "bookmarks", engine.Name)
	assert.Equal(t, UploadStats{Sent: 5, SentFailed: 1}, engine.Outgoing)
	assert.Equal(t, DownloadStats{Applied: 10, Succeeded: 9, Failed: 1, NewFailed: 0, Reconciled: 2}, engine.Incoming)

	assert.Equal(t, PingVersion, ping.Version)
	assert.Equal(t, 0, ping.Discarded)
	assert.Equal(t, PingSchedule, ping.Why)
	assert.Equal(t, "testUID", ping.UID)
	assert.Equal(t, "testDeviceID", ping.DeviceID)
}

func TestBuildPing_WireShape(t *testing.T) {
	op := NewOperationStatsSession(ReasonDidLogin, "testUID", "testDeviceID")
	es := op.AddEngine("bookmarks")
	es.RecordUpload(UploadStats{Sent: 5, SentFailed: 1})
	es.RecordDownload(DownloadStats{Applied: 10, Succeeded: 9, Failed: 1, Reconciled: 2})

	ping := BuildPing(op, PingShutdown, 3)
	data, err := json.Marshal(ping)
	require.NoError(t, err)

	// the ping never started, so when/took are their zero defaults
	want := fmt.Sprintf(`{
		"version": %d,
		"discarded": 3,
		"why": "shutdown",
		"uid": "testUID",
		"deviceID": "testDeviceID",
		"syncs": [{
			"when": 0,
			"took": 0,
			"didLogin": true,
			"why": "didLogin",
			"engines": [{
				"name": "bookmarks",
				"took": 0,
				"incoming": {"applied": 10, "succeeded": 9, "failed": 1, "newFailed": 0, "reconciled": 2},
				"outgoing": {"sent": 5, "sentFailed": 1}
			}]
		}]
	}`, PingVersion)
	assert.JSONEq(t, want, string(data))
}

func TestBuildPing_Deterministic(t *testing.T) {
	op := NewOperationStatsSession(ReasonScheduled, "testUID", "")
	op.AddEngine("bookmarks").RecordUpload(UploadStats{Sent: 1})
	op.AddEngine("history").RecordDownload(DownloadStats{Applied: 2})

	a, err := json.Marshal(BuildPing(op, PingSchedule, 0))
	require.NoError(t, err)
	b, err := json.Marshal(BuildPing(op, PingSchedule, 0))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "identical inputs produce byte-identical output")
}
