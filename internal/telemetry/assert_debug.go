//go:build debug

package telemetry

// contractViolation reports a logical precondition violation. Debug builds
// fail loudly so contract bugs surface during development.
func contractViolation(reason string) {
	panic("telemetry contract violation: " + reason)
}
