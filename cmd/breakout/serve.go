package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var serveFlags struct {
	addr     string
	hostKey  string
	idle     time.Duration
	logLevel string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host game sessions over SSH",
	Long: `Listens for SSH connections and gives each one its own menu session.

All sessions share the --db database for run history and high scores. The
host key is read from --host-key, or generated once at ~/.breakout/host_key.
Players connect with a plain ssh client:

  ssh -p 23234 localhost`,
	Example: `  breakout serve
  breakout serve --ssh :2222 --idle-timeout 10m
  breakout serve --host-key ./host_key --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		preset, err := difficulty()
		if err != nil {
			return err
		}
		level, err := log.ParseLevel(serveFlags.logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "breakout-ssh",
			Level:           level,
		})

		server, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     serveFlags.addr,
			HostKeyPath: serveFlags.hostKey,
			DBPath:      flagDBPath,
			IdleTimeout: serveFlags.idle,
			Runtime:     runtimeConfig(),
			ConfigPath:  flagConfig,
			Difficulty:  preset,
			Logger:      logger,
		})
		if err != nil {
			return err
		}
		logger.Info("listening, ctrl+c to stop", "addr", serveFlags.addr)
		return server.ListenAndServe()
	},
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.addr, "ssh", ":23234", "listen address")
	f.StringVar(&serveFlags.hostKey, "host-key", "", "host key file (default ~/.breakout/host_key)")
	f.DurationVar(&serveFlags.idle, "idle-timeout", 30*time.Minute, "disconnect sessions idle this long")
	f.StringVar(&serveFlags.logLevel, "log-level", "info", "debug, info, warn or error")
}
