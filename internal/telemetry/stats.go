package telemetry

// UploadStats counts records pushed to the server by one engine run.
// Field names are part of the ping wire contract; renaming one is a
// breaking change that requires a ping version bump.
type UploadStats struct {
	Sent       int `json:"sent"`
	SentFailed int `json:"sentFailed"`
}

// HasData reports whether any counter moved.
func (s *UploadStats) HasData() bool {
	return s.Sent > 0 || s.SentFailed > 0
}

// DownloadStats counts records pulled from the server by one engine run.
// Same wire-contract rules as UploadStats.
type DownloadStats struct {
	Applied    int `json:"applied"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
	NewFailed  int `json:"newFailed"`
	Reconciled int `json:"reconciled"`
}

// HasData reports whether any counter moved.
func (s *DownloadStats) HasData() bool {
	return s.Applied > 0 || s.Succeeded > 0 || s.Failed > 0 || s.NewFailed > 0 || s.Reconciled > 0
}

// ValidationStats is reserved for validation-issue counters. Nothing is
// recorded into it yet.
type ValidationStats struct{}

// HasData is always false until validation counters land.
func (ValidationStats) HasData() bool {
	return false
}
