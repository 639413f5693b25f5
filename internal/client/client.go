package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/driftlabs/driftbox/internal/client/config"
	"github.com/driftlabs/driftbox/internal/client/sync"
	"github.com/driftlabs/driftbox/internal/driftsdk"
	"github.com/driftlabs/driftbox/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

type Client struct {
	config *config.Config
	sdk    *driftsdk.DriftSDK
	sync   *sync.Manager
}

// pingSubmitter adapts the sdk telemetry API to the manager's narrow
// Submitter interface.
type pingSubmitter struct {
	api *driftsdk.TelemetryAPI
}

func (p *pingSubmitter) SubmitPing(ctx context.Context, ping *telemetry.SyncPing) error {
	resp, err := p.api.SubmitPing(ctx, ping)
	if err != nil {
		return err
	}
	slog.Debug("ping submitted", "doc", resp.DocumentID, "status", resp.Status)
	return nil
}

// New wires a client from a validated config. Engines are supplied by the
// embedding app; with none given a no-op engine keeps the schedule alive.
func New(cfg *config.Config, engines ...sync.Engine) (*Client, error) {
	sdk, err := driftsdk.New(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create sdk: %w", err)
	}

	if err := sdk.Login(cfg.UserID); err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	deviceID := cfg.DeviceID
	if deviceID == "" {
		deviceID = driftsdk.HWID
	}

	if len(engines) == 0 {
		engines = []sync.Engine{sync.NewNoopEngine("clients")}
	}

	mgr := sync.NewManager(cfg.UserID, deviceID, cfg.SyncInterval, &pingSubmitter{api: sdk.Telemetry}, engines...)

	return &Client{
		config: cfg,
		sdk:    sdk,
		sync:   mgr,
	}, nil
}

func (c *Client) Start(ctx context.Context) error {
	slog.Info("driftbox client start", "user", c.config.UserID, "server", c.config.ServerURL, "interval", c.config.SyncInterval)

	if err := c.sync.Start(ctx); err != nil {
		return fmt.Errorf("failed to start sync manager: %w", err)
	}

	<-ctx.Done()
	slog.Info("received interrupt signal, stopping client")

	// the run context is gone, give the shutdown drain its own deadline
	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := c.sync.Stop(stopCtx); err != nil {
		slog.Error("shutdown sync failed", "error", err)
	}

	c.sdk.Close()
	slog.Info("driftbox client stop")
	return nil
}

// SyncNow triggers one user-initiated sync outside the schedule.
func (c *Client) SyncNow(ctx context.Context) error {
	return c.sync.SyncNow(ctx)
}
