package sync

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/driftlabs/driftbox/internal/telemetry"
)

// ErrAuthRequired is returned (or wrapped) by engines when the server
// rejected their credentials.
var ErrAuthRequired = errors.New("sync: auth required")

// HTTPError is returned (or wrapped) by engines that got a non-success
// status from the server.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sync: http error (%d)", e.StatusCode)
}

// classifyFailure maps an engine error onto the tagged failure variants the
// ping can carry. Anything unrecognized stays opaque.
func classifyFailure(err error) *telemetry.SyncFailure {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &telemetry.SyncFailure{Kind: telemetry.FailureShutdown}
	}
	if errors.Is(err, ErrAuthRequired) {
		return &telemetry.SyncFailure{Kind: telemetry.FailureAuth}
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return telemetry.HTTPFailure(httpErr.StatusCode)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &telemetry.SyncFailure{Kind: telemetry.FailureNetwork}
	}

	return telemetry.UnknownFailure(err)
}
