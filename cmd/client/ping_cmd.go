package main

import (
	"fmt"
	"log/slog"

	"github.com/driftlabs/driftbox/internal/client/config"
	"github.com/driftlabs/driftbox/internal/driftsdk"
	"github.com/driftlabs/driftbox/internal/telemetry"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPingCmd())
}

// newPingCmd builds a one-off diagnostic ping and submits it, or prints it
// with --dry-run. Handy for checking collector connectivity and for eyeballing
// the exact wire payload.
func newPingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Build a diagnostic sync ping and submit it to the collector",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromViper()
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			ping := buildDiagnosticPing(cfg)

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			if dryRun {
				data, err := json.MarshalIndent(ping, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			sdk, err := driftsdk.New(cfg.ServerURL)
			if err != nil {
				return err
			}
			if err := sdk.Login(cfg.UserID); err != nil {
				return err
			}
			defer sdk.Close()

			resp, err := sdk.Telemetry.SubmitPing(cmd.Context(), ping)
			if err != nil {
				return err
			}

			slog.Info("ping submitted", "doc", resp.DocumentID, "status", resp.Status)
			return nil
		},
	}
	cmd.Flags().Bool("dry-run", false, "Print the ping instead of submitting it")
	return cmd
}

func buildDiagnosticPing(cfg *config.Config) *telemetry.SyncPing {
	deviceID := cfg.DeviceID
	if deviceID == "" {
		deviceID = driftsdk.HWID
	}

	op := telemetry.NewOperationStatsSession(telemetry.ReasonUser, cfg.UserID, deviceID)
	op.Start()
	es := op.AddEngine("diagnostics")
	es.Start()
	es.End()
	op.End()

	return telemetry.BuildPing(op, telemetry.PingSchedule, 0)
}
