package driftsdk

import (
	"fmt"
	"runtime"

	"github.com/denisbrodbeck/machineid"
	"github.com/driftlabs/driftbox/internal/version"
	"github.com/google/uuid"
)

const (
	HeaderUserAgent     = "User-Agent"
	HeaderDriftVersion  = "X-Drift-Version"
	HeaderDriftUser     = "X-Drift-User"
	HeaderDriftDeviceId = "X-Drift-Device-Id"
)

var DriftBoxUserAgent = fmt.Sprintf("DriftBox/%s (%s; %s; %s)", version.Version, version.Revision, runtime.GOOS, runtime.GOARCH)

// HWID identifies this machine across runs without leaking the raw platform
// id. Falls back to a random uuid on platforms with no machine id
// (containers, stripped-down VMs), which makes the id per-process there.
var HWID = func() string {
	id, err := machineid.ProtectedID("driftbox")
	if err != nil {
		return uuid.NewString()
	}
	return id
}()
