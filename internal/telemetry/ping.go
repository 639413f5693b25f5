package telemetry

// PingReason is why a ping is being submitted. Distinct from SyncReason:
// one describes the sync run, the other the upload of its stats.
type PingReason string

const (
	PingShutdown  PingReason = "shutdown"
	PingSchedule  PingReason = "schedule"
	PingIDChanged PingReason = "idchanged"
)

// PingVersion is the current ping schema version. Bump it whenever a wire
// field is renamed or restructured.
const PingVersion = 1

// EngineRecord is the wire shape of one engine's stats. Consumers depend on
// these exact field names and nesting.
type EngineRecord struct {
	Name     string        `json:"name"`
	Took     int64         `json:"took"`
	Incoming DownloadStats `json:"incoming"`
	Outgoing UploadStats   `json:"outgoing"`
}

// OperationRecord is the wire shape of one sync run.
type OperationRecord struct {
	When     int64          `json:"when"`
	Took     int64          `json:"took"`
	DidLogin bool           `json:"didLogin"`
	Why      SyncReason     `json:"why"`
	Engines  []EngineRecord `json:"engines"`
}

// SyncPing is one fully-built telemetry payload. Build it from a completed
// run and never mutate it afterwards.
type SyncPing struct {
	Version   int               `json:"version"`
	Discarded int               `json:"discarded"`
	Why       PingReason        `json:"why"`
	UID       string            `json:"uid"`
	DeviceID  string            `json:"deviceID"`
	Syncs     []OperationRecord `json:"syncs"`
}

// BuildPing assembles the payload for one completed run. why and discarded
// are the submitter's call; pass PingSchedule and 0 for a routine upload.
// Syncs is an array to leave room for batching runs later, but carries
// exactly one element today.
func BuildPing(op *OperationStatsSession, why PingReason, discarded int) *SyncPing {
	return &SyncPing{
		Version:   PingVersion,
		Discarded: discarded,
		Why:       why,
		UID:       op.UID(),
		DeviceID:  op.DeviceID(),
		Syncs:     []OperationRecord{op.Serialize()},
	}
}
