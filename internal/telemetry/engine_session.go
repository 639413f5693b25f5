package telemetry

// EngineStatsSession accumulates counters for a single sync engine (one
// collection, e.g. "bookmarks") within one run. It is owned by the
// OperationStatsSession that created it and is only ever touched by one
// goroutine; engines run sequentially within a sync. If engines are ever
// parallelized this needs a lock per session.
type EngineStatsSession struct {
	Timing

	name       string
	upload     UploadStats
	download   DownloadStats
	failure    *SyncFailure
	validation *ValidationStats
}

func NewEngineStatsSession(collection string) *EngineStatsSession {
	return &EngineStatsSession{name: collection}
}

// Name returns the collection this session reports for.
func (s *EngineStatsSession) Name() string {
	return s.name
}

// RecordUpload folds an incremental upload count into the running totals.
// Field-wise addition, never a replace, so it is safe to call once per
// uploaded batch.
func (s *EngineStatsSession) RecordUpload(inc UploadStats) {
	s.upload.Sent += inc.Sent
	s.upload.SentFailed += inc.SentFailed
}

// RecordDownload folds an incremental download count into the running
// totals. Same addition semantics as RecordUpload.
func (s *EngineStatsSession) RecordDownload(inc DownloadStats) {
	s.download.Applied += inc.Applied
	s.download.Succeeded += inc.Succeeded
	s.download.Failed += inc.Failed
	s.download.NewFailed += inc.NewFailed
	s.download.Reconciled += inc.Reconciled
}

// RecordFailure attaches the failure that ended this engine's run.
func (s *EngineStatsSession) RecordFailure(f *SyncFailure) {
	s.failure = f
}

// RecordValidation attaches validation results for this engine's run.
func (s *EngineStatsSession) RecordValidation(v *ValidationStats) {
	s.validation = v
}

// Failure returns the recorded failure, nil if the run succeeded.
func (s *EngineStatsSession) Failure() *SyncFailure {
	return s.failure
}

// Validation returns the attached validation results, nil if none were
// recorded.
func (s *EngineStatsSession) Validation() *ValidationStats {
	return s.validation
}

// Upload returns a copy of the accumulated upload counters.
func (s *EngineStatsSession) Upload() UploadStats {
	return s.upload
}

// Download returns a copy of the accumulated download counters.
func (s *EngineStatsSession) Download() DownloadStats {
	return s.download
}

// Serialize renders the session in the ping wire shape.
func (s *EngineStatsSession) Serialize() EngineRecord {
	return EngineRecord{
		Name:     s.name,
		Took:     s.Took().Nanoseconds(),
		Incoming: s.download,
		Outgoing: s.upload,
	}
}
