package driftsdk

import (
	"time"

	"github.com/driftlabs/driftbox/internal/version"
	"github.com/imroc/req/v3"
)

// DriftSDK is the client for the DriftBox collector API.
type DriftSDK struct {
	client *req.Client

	Telemetry *TelemetryAPI
}

// New creates a new DriftSDK client against the given collector.
func New(baseURL string) (*DriftSDK, error) {
	if baseURL == "" {
		return nil, ErrNoServerURL
	}

	client := req.C().
		SetBaseURL(baseURL).
		SetCommonRetryCount(3).
		SetCommonRetryFixedInterval(1*time.Second).
		SetUserAgent(DriftBoxUserAgent).
		SetCommonHeader(HeaderDriftVersion, version.Version).
		SetCommonHeader(HeaderDriftDeviceId, HWID).
		SetCommonErrorResult(&APIError{}).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &DriftSDK{
		client:    client,
		Telemetry: newTelemetryAPI(client),
	}, nil
}

// Login sets the user for subsequent API calls.
func (s *DriftSDK) Login(user string) error {
	if user == "" {
		return ErrNoUser
	}
	s.client.SetCommonHeader(HeaderDriftUser, user)
	return nil
}

// Close releases pooled connections.
func (s *DriftSDK) Close() {
	s.client.GetClient().CloseIdleConnections()
}
