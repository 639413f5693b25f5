package telemetry

import "fmt"

// FailureKind classifies why an engine run failed.
type FailureKind uint8

const (
	FailureUnknown FailureKind = iota
	FailureShutdown
	FailureAuth
	FailureNetwork
	FailureHTTP
)

var failureKindNames = []string{
	"unexpectederror",
	"shutdownerror",
	"autherror",
	"networkerror",
	"httperror",
}

func (k FailureKind) String() string {
	if int(k) >= len(failureKindNames) {
		return failureKindNames[FailureUnknown]
	}
	return failureKindNames[k]
}

// SyncFailure is the failure an orchestrator attaches to an engine session.
// Code is meaningful for FailureHTTP only; Message carries the opaque error
// text for FailureUnknown.
type SyncFailure struct {
	Kind    FailureKind
	Code    int
	Message string
}

// HTTPFailure builds a failure for a non-success collector/server status.
func HTTPFailure(code int) *SyncFailure {
	return &SyncFailure{Kind: FailureHTTP, Code: code}
}

// UnknownFailure wraps an error the orchestrator could not classify.
func UnknownFailure(err error) *SyncFailure {
	return &SyncFailure{Kind: FailureUnknown, Message: err.Error()}
}

func (f *SyncFailure) Error() string {
	switch f.Kind {
	case FailureHTTP:
		return fmt.Sprintf("sync failure: %s (%d)", f.Kind, f.Code)
	case FailureUnknown:
		return fmt.Sprintf("sync failure: %s: %s", f.Kind, f.Message)
	default:
		return "sync failure: " + f.Kind.String()
	}
}
