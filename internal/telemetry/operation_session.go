package telemetry

// SyncReason is why a sync run was triggered. The values are wire-contract
// strings, not display names.
type SyncReason string

const (
	ReasonStartup      SyncReason = "startup"
	ReasonScheduled    SyncReason = "scheduled"
	ReasonBackgrounded SyncReason = "backgrounded"
	ReasonUser         SyncReason = "user"
	ReasonSyncNow      SyncReason = "syncNow"
	ReasonDidLogin     SyncReason = "didLogin"
)

// OperationStatsSession tracks one whole sync run across every engine that
// participated. Engine sessions are registered by the orchestrator as each
// engine runs; registration order is the order they appear in the ping.
// A session belongs to exactly one run and must not be reused.
type OperationStatsSession struct {
	Timing

	reason   SyncReason
	uid      string
	deviceID string
	didLogin bool

	engines []*EngineStatsSession
	byName  map[string]*EngineStatsSession
}

// NewOperationStatsSession creates the session for one sync run. uid must be
// non-empty; deviceID may be empty when the device has not been provisioned
// yet.
func NewOperationStatsSession(reason SyncReason, uid, deviceID string) *OperationStatsSession {
	if uid == "" {
		contractViolation("operation session created without a uid")
	}
	return &OperationStatsSession{
		reason:   reason,
		uid:      uid,
		deviceID: deviceID,
		didLogin: reason == ReasonDidLogin,
		byName:   make(map[string]*EngineStatsSession),
	}
}

// Reason returns why this run was triggered.
func (s *OperationStatsSession) Reason() SyncReason {
	return s.reason
}

// UID returns the user this run syncs for.
func (s *OperationStatsSession) UID() string {
	return s.uid
}

// DeviceID returns the device identifier, empty if not provisioned.
func (s *OperationStatsSession) DeviceID() string {
	return s.deviceID
}

// AddEngine registers the stats session for one engine run. Names are
// unique within a run; re-adding a name returns the session that is already
// registered.
func (s *OperationStatsSession) AddEngine(collection string) *EngineStatsSession {
	if es, ok := s.byName[collection]; ok {
		return es
	}
	es := NewEngineStatsSession(collection)
	s.byName[collection] = es
	s.engines = append(s.engines, es)
	return es
}

// Engines returns the registered engine sessions in execution order.
func (s *OperationStatsSession) Engines() []*EngineStatsSession {
	return s.engines
}

// Serialize renders the run in the ping wire shape, engines in the order
// they were added.
func (s *OperationStatsSession) Serialize() OperationRecord {
	recs := make([]EngineRecord, 0, len(s.engines))
	for _, es := range s.engines {
		recs = append(recs, es.Serialize())
	}
	return OperationRecord{
		When:     s.StartedAt(),
		Took:     s.Took().Nanoseconds(),
		DidLogin: s.didLogin,
		Why:      s.reason,
		Engines:  recs,
	}
}
