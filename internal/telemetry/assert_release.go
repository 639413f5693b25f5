//go:build !debug

package telemetry

import "log/slog"

// contractViolation reports a logical precondition violation. Telemetry
// defects must never crash the host, so release builds log and degrade.
func contractViolation(reason string) {
	slog.Error("telemetry contract violation", "reason", reason)
}
