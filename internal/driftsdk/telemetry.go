package driftsdk

import (
	"context"
	"fmt"

	"github.com/driftlabs/driftbox/internal/telemetry"
	"github.com/google/uuid"
	"github.com/imroc/req/v3"
)

const (
	v1SubmitSyncPing = "/api/v1/telemetry/sync/%s"
)

// TelemetryAPI submits built pings to the collector.
type TelemetryAPI struct {
	client *req.Client
}

func newTelemetryAPI(client *req.Client) *TelemetryAPI {
	return &TelemetryAPI{
		client: client,
	}
}

// SubmitPingResponse is the collector's acknowledgement of one submission.
type SubmitPingResponse struct {
	DocumentID string `json:"documentId"`
	Status     string `json:"status"`
}

// SubmitPing uploads one built sync ping. Every submission gets a fresh
// document id so the collector can dedupe retried uploads.
func (t *TelemetryAPI) SubmitPing(ctx context.Context, ping *telemetry.SyncPing) (*SubmitPingResponse, error) {
	if ping == nil {
		return nil, ErrNilPing
	}

	docID := uuid.NewString()
	var resp *SubmitPingResponse
	res, err := t.client.R().
		SetContext(ctx).
		SetBody(ping).
		SetSuccessResult(&resp).
		Post(fmt.Sprintf(v1SubmitSyncPing, docID))

	if err := handleAPIError(res, err, "submit sync ping"); err != nil {
		return nil, err
	}

	// collectors that reply with an empty body still acked the doc
	if resp == nil {
		resp = &SubmitPingResponse{DocumentID: docID, Status: "ok"}
	} else if resp.DocumentID == "" {
		resp.DocumentID = docID
	}

	return resp, nil
}
