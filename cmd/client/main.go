package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/driftlabs/driftbox/internal/client"
	"github.com/driftlabs/driftbox/internal/client/config"
	"github.com/driftlabs/driftbox/internal/version"
	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	home, _        = os.UserHomeDir()
	configFileName = "config"
)

var rootCmd = &cobra.Command{
	Use:     "driftbox",
	Short:   "DriftBox sync telemetry client",
	Version: version.Detailed(),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromViper()
		if err != nil {
			return err
		}

		// all good now, show header
		cmd.SilenceUsage = true
		showHeader()

		c, err := client.New(cfg)
		if err != nil {
			return err
		}

		defer slog.Info("Bye!")
		return c.Start(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().SortFlags = false
	rootCmd.PersistentFlags().StringP("user", "u", "", "User id to report pings for")
	rootCmd.PersistentFlags().String("device", "", "Device id (defaults to the hardware id)")
	rootCmd.PersistentFlags().StringP("server", "s", config.DefaultServerURL, "Telemetry collector URL")
	rootCmd.PersistentFlags().DurationP("interval", "i", config.DefaultSyncInterval, "Interval between scheduled syncs")
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath, "DriftBox config file")
}

func main() {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	})
	slog.SetDefault(slog.New(handler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) error {
	// config path
	if cmd.Flags().Changed("config") {
		configFilePath, _ := cmd.Flags().GetString("config")
		viper.SetConfigFile(configFilePath)
	} else {
		viper.AddConfigPath(filepath.Join(home, ".driftbox"))
		viper.AddConfigPath(filepath.Join(home, ".config/driftbox"))
		viper.SetConfigName(configFileName)
		viper.SetConfigType("json")
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		enoent := errors.Is(err, os.ErrNotExist)
		_, ok := err.(viper.ConfigFileNotFoundError)
		if !enoent && !ok {
			return fmt.Errorf("config read '%s': %w", viper.ConfigFileUsed(), err)
		}
	}

	// Bind flags to viper
	viper.BindPFlag("user_id", cmd.Flags().Lookup("user"))
	viper.BindPFlag("device_id", cmd.Flags().Lookup("device"))
	viper.BindPFlag("server_url", cmd.Flags().Lookup("server"))
	viper.BindPFlag("sync_interval", cmd.Flags().Lookup("interval"))

	// Set up environment variables
	viper.SetEnvPrefix("DRIFTBOX")
	viper.AutomaticEnv()

	return nil
}

func configFromViper() (*config.Config, error) {
	cfg := &config.Config{
		Path:         viper.ConfigFileUsed(),
		UserID:       viper.GetString("user_id"),
		DeviceID:     viper.GetString("device_id"),
		ServerURL:    viper.GetString("server_url"),
		SyncInterval: viper.GetDuration("sync_interval"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func showHeader() {
	color.New(color.FgHiCyan, color.Bold).Println(version.AppName + " " + version.Short())
}
