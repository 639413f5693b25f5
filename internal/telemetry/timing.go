package telemetry

import "time"

// Timing measures one start/stop window. The zero value is ready to use.
// The wall-clock start is recorded for reporting only; the elapsed duration
// comes from the monotonic reading inside time.Time, so NTP corrections or
// DST changes cannot produce a negative measurement.
type Timing struct {
	startedAtMs int64
	took        time.Duration
	startMark   time.Time
}

// Start records the wall-clock start time and captures a monotonic mark.
// Calling Start again discards the previous measurement window.
func (t *Timing) Start() {
	t.StartAt(time.Now())
}

// StartAt is Start with an explicit wall-clock time for the "when" field.
// The monotonic mark used for duration math is still taken now.
func (t *Timing) StartAt(wall time.Time) {
	t.startedAtMs = wall.UnixMilli()
	t.startMark = time.Now()
}

// HasStarted reports whether Start was ever called. It answers "was this
// ever started", not "is it currently running", so it stays true after End.
func (t *Timing) HasStarted() bool {
	return !t.startMark.IsZero()
}

// End computes the elapsed duration since Start. Ending a timing that was
// never started is a contract violation: fatal under the debug build tag,
// otherwise logged and left at a zero duration.
func (t *Timing) End() {
	if !t.HasStarted() {
		contractViolation("timing ended without a start")
		return
	}
	t.took = time.Since(t.startMark)
}

// StartedAt returns the wall-clock start in epoch millis, 0 if never started.
func (t *Timing) StartedAt() int64 {
	return t.startedAtMs
}

// Took returns the measured duration. Only meaningful after End.
func (t *Timing) Took() time.Duration {
	return t.took
}
